package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/polybox/internal/config"
	"github.com/san-kum/polybox/internal/poly"
	"github.com/san-kum/polybox/internal/viz"
)

var (
	configFile   string
	dataDir      string
	notationName string
	themeName    string
	verbose      bool

	// Operation flags
	showBoard   bool
	saveSession bool
	asJSON      bool
	preset      string

	// SVG export
	stepNum  int
	outPath  string
	svgScale float64

	suggestLimit int
	serveAddr    string
)

// app is the resolved runtime configuration, filled in before any command
// runs.
var app struct {
	cfg      *config.Config
	notation poly.Notation
	theme    viz.Theme
	logger   *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "polybox",
		Short:             "polynomial arithmetic with algebra tiles",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "session data directory")
	rootCmd.PersistentFlags().StringVar(&notationName, "notation", config.DefaultNotation, "exponent notation: caret or superscript")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(polynomialCommands()...)
	rootCmd.AddCommand(operationCommands()...)
	rootCmd.AddCommand(historyCommand(), serveCommand())
	return rootCmd
}

// setup loads the config file, then applies any flag the user set
// explicitly on top of it.
func setup(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("notation") {
		cfg.Notation = notationName
	}
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	notation, ok := poly.ParseNotation(cfg.Notation)
	if !ok {
		return fmt.Errorf("unknown notation: %s", cfg.Notation)
	}
	theme, ok := viz.LookupTheme(cfg.Theme)
	if !ok {
		return fmt.Errorf("unknown theme: %s (available: %v)", cfg.Theme, viz.ThemeNames())
	}

	app.cfg = cfg
	app.notation = notation
	app.theme = theme
	app.logger = newLogger(cmd, cfg.LogLevel)
	slog.SetDefault(app.logger)

	app.logger.Debug("config resolved", "file", configFile, "data", cfg.DataDir, "notation", notation, "theme", theme.Name)
	return nil
}

func newLogger(cmd *cobra.Command, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
}

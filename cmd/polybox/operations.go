package main

import (
	"encoding/json"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/polybox/internal/config"
	"github.com/san-kum/polybox/internal/export"
	"github.com/san-kum/polybox/internal/ops"
	"github.com/san-kum/polybox/internal/storage"
	"github.com/san-kum/polybox/internal/viz"
)

var shortNames = map[ops.Kind]string{
	ops.Addition:       "add",
	ops.Subtraction:    "sub",
	ops.Multiplication: "mul",
	ops.Division:       "div",
}

func operationCommands() []*cobra.Command {
	var cmds []*cobra.Command
	for _, kind := range ops.Kinds() {
		c := &cobra.Command{
			Use:     shortNames[kind] + " [p] [q]",
			Aliases: []string{kind.String()},
			Short:   fmt.Sprintf("P(x) %s Q(x) step by step", kind.Symbol()),
			Args:    cobra.RangeArgs(0, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, kind, args)
			},
		}
		c.Flags().BoolVar(&showBoard, "board", false, "render the tile board for each step")
		c.Flags().BoolVar(&saveSession, "save", false, "record the session in the data directory")
		c.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
		c.Flags().StringVar(&preset, "preset", "", "use a preset operand pair")
		cmds = append(cmds, c)
	}

	stepsCmd := &cobra.Command{
		Use:   "steps [op] [p] [q]",
		Short: "page through the steps interactively",
		Args:  cobra.RangeArgs(1, 3),
		RunE:  runStepper,
	}
	stepsCmd.Flags().StringVar(&preset, "preset", "", "use a preset operand pair")

	svgCmd := &cobra.Command{
		Use:   "svg [op] [p] [q]",
		Short: "export one step's board as SVG",
		Args:  cobra.RangeArgs(1, 3),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVar(&preset, "preset", "", "use a preset operand pair")
	svgCmd.Flags().IntVar(&stepNum, "step", 1, "step number (1-based)")
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	svgCmd.Flags().Float64Var(&svgScale, "scale", 1, "size multiplier")

	presetsCmd := &cobra.Command{
		Use:   "presets [op]",
		Short: "list preset operand pairs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	return append(cmds, stepsCmd, svgCmd, presetsCmd)
}

// operands picks the pair from positional args or from --preset.
func operands(kind ops.Kind, args []string) (string, string, error) {
	if preset != "" {
		pair, ok := config.GetPreset(kind.String(), preset)
		if !ok {
			return "", "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(kind.String()))
		}
		return pair.A, pair.B, nil
	}
	if len(args) != 2 {
		return "", "", fmt.Errorf("%s needs two polynomials or --preset", kind)
	}
	return args[0], args[1], nil
}

// execute validates and runs an operation with the configured ceiling.
func execute(kind ops.Kind, a, b string) (ops.Outcome, error) {
	validator := ops.Validator{DegreeCeiling: app.cfg.DegreeCeiling, MaxDegree: app.cfg.MaxDegree}
	if check := validator.Validate(a, b, kind); !check.Valid {
		return ops.Outcome{}, check.Err
	}
	app.logger.Debug("running operation", "kind", kind, "a", a, "b", b)
	return ops.Run(kind, a, b)
}

func runOperation(cmd *cobra.Command, kind ops.Kind, args []string) error {
	a, b, err := operands(kind, args)
	if err != nil {
		return err
	}
	out, err := execute(kind, a, b)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		printOutcome(w, out, a, b)
	}

	if saveSession {
		st := storage.New(app.cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(out)
		if err != nil {
			return err
		}
		app.logger.Info("session saved", "id", id, "dir", app.cfg.DataDir)
	}
	return nil
}

func printOutcome(w io.Writer, out ops.Outcome, a, b string) {
	st := viz.NewStyles(app.theme)
	fmt.Fprintln(w, st.Title.Render(fmt.Sprintf("(%s) %s (%s)", a, out.Kind.Symbol(), b)))
	fmt.Fprintln(w)

	for _, step := range out.Steps() {
		fmt.Fprintf(w, "%d. %s\n", step.ID, st.Value.Render(step.Title))
		fmt.Fprintf(w, "   %s\n", step.Description)
		if showBoard {
			fmt.Fprintln(w, viz.RenderBoard(viz.BuildBoard(step, app.notation), app.theme))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, st.Label.Render("Result")+st.Positive.Render(display(out)))
}

// display renders the answer in the configured notation.
func display(out ops.Outcome) string {
	if d := out.Division; d != nil {
		return fmt.Sprintf("q = %s, r = %s", d.Quotient.Format(app.notation), d.Remainder.Format(app.notation))
	}
	if out.Result != nil {
		return out.Result.Result.Format(app.notation)
	}
	return ""
}

// kindAndOperands reads "<op> [p] [q]" style arguments.
func kindAndOperands(args []string) (ops.Kind, string, string, error) {
	kind, err := ops.ParseKind(args[0])
	if err != nil {
		return "", "", "", err
	}
	a, b, err := operands(kind, args[1:])
	return kind, a, b, err
}

func runStepper(cmd *cobra.Command, args []string) error {
	kind, a, b, err := kindAndOperands(args)
	if err != nil {
		return err
	}
	out, err := execute(kind, a, b)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("(%s) %s (%s) = %s", a, kind.Symbol(), b, display(out))
	m := viz.NewStepper(title, out.Steps(), app.theme, app.notation)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func exportSVG(cmd *cobra.Command, args []string) error {
	kind, a, b, err := kindAndOperands(args)
	if err != nil {
		return err
	}
	out, err := execute(kind, a, b)
	if err != nil {
		return err
	}

	steps := out.Steps()
	if stepNum < 1 || stepNum > len(steps) {
		return fmt.Errorf("step %d out of range 1..%d", stepNum, len(steps))
	}
	board := viz.BuildBoard(steps[stepNum-1], app.notation)

	if outPath == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), export.BoardToSVG(board, app.theme, svgScale)+"\n")
		return err
	}
	if err := export.WriteBoardSVG(outPath, board, app.theme, svgScale); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outPath)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	kinds := ops.Kinds()
	if len(args) > 0 {
		kind, err := ops.ParseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []ops.Kind{kind}
	}

	w := cmd.OutOrStdout()
	for _, kind := range kinds {
		fmt.Fprintf(w, "presets for %s:\n", kind)
		for _, name := range config.ListPresets(kind.String()) {
			pair, _ := config.GetPreset(kind.String(), name)
			fmt.Fprintf(w, "  %-12s %s  |  %s\n", name, pair.A, pair.B)
		}
	}
	return nil
}

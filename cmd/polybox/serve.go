package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/san-kum/polybox/internal/server"
)

func serveCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := app.cfg.Server.Addr
			if cmd.Flags().Changed("addr") {
				addr = serveAddr
			}

			srv := server.New(server.Options{
				Addr:          addr,
				RateLimit:     app.cfg.Server.RateLimit,
				Burst:         app.cfg.Server.Burst,
				MaxBodyBytes:  app.cfg.Server.MaxBodyBytes,
				DegreeCeiling: app.cfg.DegreeCeiling,
				MaxDegree:     app.cfg.MaxDegree,
				Logger:        app.logger,
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	return serveCmd
}

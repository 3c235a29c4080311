package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spektr-org/nyaya/server"
)

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		shutdown, err := server.InitTracer(ctx, cfg.Tracing.ServiceName, os.Stdout)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Warn("tracer shutdown failed", "error", err)
			}
		}()
	}

	store, err := server.LoadStore(ctx, cfg.Data)
	if err != nil {
		return err
	}

	srv := server.New(cfg.Server, store, server.Options{
		Logger:  slog.Default(),
		Tracing: cfg.Tracing,
	})
	return srv.Run(ctx)
}

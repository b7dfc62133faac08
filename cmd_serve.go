package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"launch_dash/internal/daemon"
	"launch_dash/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Loads the configured launch records once and serves the dashboard page
and its JSON endpoints until interrupted.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := loadStore(ctx, cfg.Data)
	if err != nil {
		slog.Error("Failed to load launch records", "error", err)
		return err
	}

	d, err := daemon.New(daemon.Config{
		Addr:           cfg.HTTP.Addr,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		Slider: server.Slider{
			Min:  cfg.Slider.Min,
			Max:  cfg.Slider.Max,
			Step: cfg.Slider.Step,
		},
	}, s)
	if err != nil {
		return fmt.Errorf("failed to create daemon: %w", err)
	}

	if err := d.Start(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		slog.Info("Received interrupt signal, shutting down...")
	case err := <-d.Errors():
		return fmt.Errorf("http server failed: %w", err)
	}

	if err := d.Stop(); err != nil {
		slog.Error("Error stopping daemon", "error", err)
		return err
	}

	slog.Info("Shutdown complete")
	return nil
}

// launch_dash serves an interactive dashboard over a static set of launch records.
//
// Usage:
//
//	launch_dash serve  [--config=<path>]
//	launch_dash report [--site=ALL] [--min=<kg>] [--max=<kg>] [--format=table|markdown|json|yaml]
//	launch_dash seed   [--csv=<path>]
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"launch_dash/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "launch_dash",
	Short: "SpaceX launch records dashboard",
	Long:  "launch_dash summarises launch outcomes by site and payload mass,\nas a web dashboard or as a one-off report.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.Version = version
}

func initLogger(cfg *config.Config) {
	var logLevel slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Log.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// loadConfig reads configuration and installs the default logger
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		os.Setenv(config.ConfigPathEnv, configPath)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	initLogger(cfg)
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

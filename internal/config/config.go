package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ConfigPathEnv names the environment variable holding an explicit config file path
const ConfigPathEnv = "LAUNCH_DASH_CONFIG_PATH"

// Supported record sources
const (
	SourceCSV      = "csv"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// Config holds all configuration for the dashboard
type Config struct {
	Data   DataConfig
	HTTP   HTTPConfig
	Slider SliderConfig
	Log    LogConfig
}

// DataConfig selects where launch records are read from
type DataConfig struct {
	Source  string
	CSVPath string
	DBPath  string
	DSN     string
}

// HTTPConfig holds server settings
type HTTPConfig struct {
	Addr           string
	RequestTimeout time.Duration
}

// SliderConfig describes the payload range slider shown by the dashboard page
type SliderConfig struct {
	Min  float64
	Max  float64
	Step float64
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from config file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("data.source", SourceCSV)
	v.SetDefault("data.csv_path", "spacex_launch_dash.csv")
	v.SetDefault("data.db_path", "launches.db")
	v.SetDefault("data.dsn", "")
	v.SetDefault("http.addr", ":8050")
	v.SetDefault("http.request_timeout", 10)
	v.SetDefault("slider.min", 0)
	v.SetDefault("slider.max", 10000)
	v.SetDefault("slider.step", 1000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/launch_dash")
	v.AddConfigPath(".")

	if configPath := os.Getenv(ConfigPathEnv); configPath != "" {
		v.SetConfigFile(configPath)
	}

	// A missing config file is fine: defaults and env vars still apply
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("LAUNCH_DASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Data: DataConfig{
			Source:  strings.ToLower(v.GetString("data.source")),
			CSVPath: v.GetString("data.csv_path"),
			DBPath:  v.GetString("data.db_path"),
			DSN:     v.GetString("data.dsn"),
		},
		HTTP: HTTPConfig{
			Addr:           v.GetString("http.addr"),
			RequestTimeout: time.Duration(v.GetInt("http.request_timeout")) * time.Second,
		},
		Slider: SliderConfig{
			Min:  v.GetFloat64("slider.min"),
			Max:  v.GetFloat64("slider.max"),
			Step: v.GetFloat64("slider.step"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values
func validate(cfg *Config) error {
	switch cfg.Data.Source {
	case SourceCSV:
		if cfg.Data.CSVPath == "" {
			return fmt.Errorf("data.csv_path is required for the csv source")
		}
	case SourceSQLite:
		if cfg.Data.DBPath == "" {
			return fmt.Errorf("data.db_path is required for the sqlite source")
		}
	case SourcePostgres:
		if cfg.Data.DSN == "" {
			return fmt.Errorf("data.dsn is required for the postgres source")
		}
	default:
		return fmt.Errorf("invalid data source: %s (must be csv, sqlite, or postgres)", cfg.Data.Source)
	}

	if cfg.HTTP.Addr == "" {
		return fmt.Errorf("http.addr is required")
	}

	if cfg.HTTP.RequestTimeout <= 0 {
		return fmt.Errorf("http.request_timeout must be greater than 0")
	}

	if cfg.Slider.Min < 0 || cfg.Slider.Max <= cfg.Slider.Min {
		return fmt.Errorf("slider range must satisfy 0 <= min < max, got [%g, %g]", cfg.Slider.Min, cfg.Slider.Max)
	}

	if cfg.Slider.Step <= 0 {
		return fmt.Errorf("slider.step must be greater than 0")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	return nil
}

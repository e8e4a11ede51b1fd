package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all toolkit settings, populated from environment variables.
type Config struct {
	// DataDir is where accident_<year>.csv.bz2 files live.
	DataDir string `envconfig:"FARS_DATA_DIR" default:"."`

	// OutputDir receives exported summaries and rendered maps.
	OutputDir string `envconfig:"FARS_OUTPUT_DIR" default:"."`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// MetricsAddr, when set (e.g. ":8080"), exposes /healthz and /metrics
	// while a batch run is in flight.
	MetricsAddr string `envconfig:"METRICS_ADDR" default:""`

	PlotWidth  int `envconfig:"PLOT_WIDTH" default:"1024"`
	PlotHeight int `envconfig:"PLOT_HEIGHT" default:"768"`
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.DataDir == "" {
		return nil, errors.New("FARS_DATA_DIR must not be empty")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("FARS_OUTPUT_DIR must not be empty")
	}
	if cfg.PlotWidth <= 0 || cfg.PlotHeight <= 0 {
		return nil, errors.New("PLOT_WIDTH and PLOT_HEIGHT must be positive")
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q (want json or text)", cfg.LogFormat)
	}

	return &cfg, nil
}

package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	httpadapter "github.com/couchcryptid/fars-data-toolkit/internal/adapter/http"
	"github.com/couchcryptid/fars-data-toolkit/internal/config"
	"github.com/couchcryptid/fars-data-toolkit/internal/observability"
)

// Shared state initialized once by the root command before any subcommand
// runs.
var (
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics

	flagDataDir string
	flagOutDir  string
)

var rootCmd = &cobra.Command{
	Use:           "fars",
	Short:         "Utilities for FARS traffic fatality data files",
	Long:          "Load bzip2-compressed FARS accident files, summarize monthly accident counts across years, and render per-state accident maps.",
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}
		if flagOutDir != "" {
			cfg.OutputDir = flagOutDir
		}

		logger = observability.NewLogger(cfg.LogLevel, cfg.LogFormat).
			With("run_id", uuid.NewString())
		metrics = observability.NewMetrics()

		startMetricsServer()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "",
		"directory containing accident_<year>.csv.bz2 files (overrides FARS_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&flagOutDir, "out-dir", "",
		"directory for exported files (overrides FARS_OUTPUT_DIR)")
}

// startMetricsServer exposes /healthz and /metrics for the duration of the
// run when METRICS_ADDR is set. The process exit tears it down; batch
// commands have no graceful-drain requirement.
func startMetricsServer() {
	if cfg.MetricsAddr == "" {
		return
	}
	srv := httpadapter.NewServer(cfg.MetricsAddr, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()
}

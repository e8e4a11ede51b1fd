// Package exporter writes summary tables to files for downstream use.
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/couchcryptid/fars-data-toolkit/internal/fars"
)

// SummaryWriter exports wide month-by-year summary tables as CSV files.
type SummaryWriter struct {
	logger *slog.Logger
}

// NewSummaryWriter creates a SummaryWriter.
func NewSummaryWriter(logger *slog.Logger) *SummaryWriter {
	return &SummaryWriter{logger: logger}
}

// WriteCSV writes the report's table to path, creating parent directories
// as needed. NaN cells — months with no observations for a year — are
// written as NA, keeping the missing-not-zero semantics of the pivot.
func (w *SummaryWriter) WriteCSV(path string, report fars.SummaryReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	names := report.Table.Names()
	if err := cw.Write(names); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	rows := report.Table.Nrow()
	for i := 0; i < rows; i++ {
		rec := make([]string, len(names))
		rec[0] = strconv.Itoa(int(report.Table.Elem(i, 0).Float()))
		for j := 1; j < len(names); j++ {
			v := report.Table.Elem(i, j).Float()
			if math.IsNaN(v) {
				rec[j] = "NA"
			} else {
				rec[j] = strconv.Itoa(int(v))
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	w.logger.Info("summary exported",
		"path", path, "rows", rows, "years", report.Years, "generated_at", report.GeneratedAt)
	return nil
}

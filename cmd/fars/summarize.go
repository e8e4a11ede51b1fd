package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/fars-data-toolkit/internal/exporter"
	"github.com/couchcryptid/fars-data-toolkit/internal/fars"
)

var flagSummaryCSV string

var summarizeCmd = &cobra.Command{
	Use:   "summarize <year>...",
	Short: "Count accidents per month across one or more years",
	Long: `Reads each year's accident file, counts accidents per (year, month), and
prints a wide table: one row per month, one column per year. Years whose
files are missing or unreadable are skipped with a warning; a month with no
accidents for a year shows as NaN, not zero.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		years, err := fars.ParseYears(args)
		if err != nil {
			return err
		}

		loader := fars.NewLoader(cfg.DataDir, logger, metrics)
		report, err := loader.Summarize(years)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), report.Table)

		if flagSummaryCSV != "" {
			path := filepath.Join(cfg.OutputDir, flagSummaryCSV)
			if err := exporter.NewSummaryWriter(logger).WriteCSV(path, report); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	summarizeCmd.Flags().StringVar(&flagSummaryCSV, "csv", "",
		"also write the summary as CSV to this file name under the output directory")
	rootCmd.AddCommand(summarizeCmd)
}

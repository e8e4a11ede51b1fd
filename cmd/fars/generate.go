package main

import (
	"github.com/spf13/cobra"

	"github.com/couchcryptid/fars-data-toolkit/internal/fars"
	"github.com/couchcryptid/fars-data-toolkit/internal/gen"
)

var (
	flagGenYear      string
	flagGenRecords   int
	flagGenSentinels int
	flagGenSeed      int64
)

var generateCmd = &cobra.Command{
	Use:   "generate --year <year>",
	Short: "Write a synthetic accident file for tests and demos",
	Long: `Writes a deterministic accident_<year>.csv.bz2 into the data directory.
The file carries the columns the toolkit consumes (MONTH, STATE, LATITUDE,
LONGITUD) plus a few filler columns, and can include rows with FARS
unknown-position placeholder coordinates.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		year, err := fars.ParseYear(flagGenYear)
		if err != nil {
			return err
		}

		path, err := gen.WriteFile(cfg.DataDir, gen.Spec{
			Year:      year,
			Records:   flagGenRecords,
			Sentinels: flagGenSentinels,
			Seed:      flagGenSeed,
		})
		if err != nil {
			return err
		}

		logger.Info("fixture written",
			"path", path, "year", year, "records", flagGenRecords, "sentinels", flagGenSentinels)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&flagGenYear, "year", "", "dataset year to generate")
	generateCmd.Flags().IntVar(&flagGenRecords, "records", 1200, "number of accident rows")
	generateCmd.Flags().IntVar(&flagGenSentinels, "sentinels", 12, "rows given unknown-position placeholder coordinates")
	generateCmd.Flags().Int64Var(&flagGenSeed, "seed", 1, "random seed")
	generateCmd.MarkFlagRequired("year") //nolint:errcheck // flag exists
	rootCmd.AddCommand(generateCmd)
}

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/fars-data-toolkit/internal/fars"
)

var checkCmd = &cobra.Command{
	Use:   "check <year>...",
	Short: "Verify that accident files exist and parse",
	Long: `Resolves and reads each year's accident file, reporting row and column
counts. Failures are reported per year; the command exits non-zero if any
year fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		years, err := fars.ParseYears(args)
		if err != nil {
			return err
		}

		failed := 0
		for _, year := range years {
			path := filepath.Join(cfg.DataDir, fars.Filename(year))
			df, err := fars.ReadData(path)
			if err != nil {
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL %d: %v\n", year, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK   %d: %d rows, %d columns (%s)\n",
				year, df.Nrow(), df.Ncol(), path)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d years failed the check", failed, len(years))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

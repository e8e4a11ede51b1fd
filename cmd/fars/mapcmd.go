package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/fars-data-toolkit/internal/fars"
	"github.com/couchcryptid/fars-data-toolkit/internal/render"
)

var (
	flagMapState string
	flagMapYear  string
	flagMapOut   string
)

var mapCmd = &cobra.Command{
	Use:   "map --state <fips> --year <year>",
	Short: "Render accident locations for one state and year as a PNG map",
	Long: `Reads the year's accident file, filters it to the given FIPS state code,
drops FARS unknown-position placeholder coordinates (LONGITUD above 900,
LATITUDE above 90), and renders the remaining accidents on a state-level
base map.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		state, err := fars.ParseState(flagMapState)
		if err != nil {
			return err
		}
		year, err := fars.ParseYear(flagMapYear)
		if err != nil {
			return err
		}

		out := flagMapOut
		if out == "" {
			out = fmt.Sprintf("accident_map_%d_%d.png", state, year)
		}

		opts := render.DefaultOptions()
		opts.Width = cfg.PlotWidth
		opts.Height = cfg.PlotHeight

		mapper := fars.NewMapper(cfg.DataDir, opts, logger, metrics)
		return mapper.MapState(state, year, filepath.Join(cfg.OutputDir, out))
	},
}

func init() {
	mapCmd.Flags().StringVar(&flagMapState, "state", "", "FIPS state code, e.g. 48 for Texas")
	mapCmd.Flags().StringVar(&flagMapYear, "year", "", "dataset year, e.g. 2014")
	mapCmd.Flags().StringVar(&flagMapOut, "out", "",
		"output PNG file name under the output directory (default accident_map_<state>_<year>.png)")
	mapCmd.MarkFlagRequired("state") //nolint:errcheck // flag exists
	mapCmd.MarkFlagRequired("year")  //nolint:errcheck // flag exists
	rootCmd.AddCommand(mapCmd)
}

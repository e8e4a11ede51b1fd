// Command fars works with FARS (Fatality Analysis Reporting System)
// accident data files: monthly summaries across years, per-state accident
// maps, dataset health checks, and synthetic fixtures.
//
// Usage:
//
//	fars summarize 2013 2014 2015 --csv summary.csv
//	fars map --state 48 --year 2014
//	fars check 2013 2014 2015
//	fars generate --year 2014 --records 1200
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

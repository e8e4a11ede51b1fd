// Package fars loads and summarizes FARS (Fatality Analysis Reporting
// System) accident data files.
//
// # Data Source
//
// FARS is the NHTSA census of fatal motor vehicle crashes in the United
// States. Each year's accident-level records are distributed as a
// bzip2-compressed CSV named accident_<year>.csv.bz2, one row per crash.
// The toolkit only interprets four columns; anything else in the file is
// read but ignored:
//
//	MONTH    crash month, 1-12
//	STATE    FIPS state code, e.g. 1 = Alabama, 48 = Texas
//	LATITUDE crash latitude in decimal degrees
//	LONGITUD crash longitude in decimal degrees (FARS drops the final E)
//
// # Coordinate Sentinels
//
// FARS encodes unknown positions with out-of-range placeholder values
// rather than empty fields:
//
//	LONGITUD > 900  (777.7777 reported-as-unknown, 999.9934 not reported)
//	LATITUDE > 90   (88.8888, 99.9999 and similar)
//
// These are not legitimate coordinates. The mapper treats them as missing
// and excludes them from both the plotted points and the axis range
// computation; leaving them in would stretch the map to the placeholder
// values and collapse the real accidents into a single pixel.
//
// # Failure Isolation
//
// Reading a single year surfaces errors immediately: a missing file or a
// malformed CSV fails that call. Multi-year loading is different by design:
// each year's failure is recorded in its [YearResult] and logged as a
// warning, so a summary across a decade survives a handful of missing
// files. The summarizer then drops failed years, which is why a year that
// never loaded contributes no column to the wide table.
package fars

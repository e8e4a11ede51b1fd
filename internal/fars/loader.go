package fars

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/couchcryptid/fars-data-toolkit/internal/observability"
)

// YearResult is the outcome of loading one year's dataset: either Data or
// Err is set. Failed years keep their slot so the output stays the same
// length and order as the requested years.
type YearResult struct {
	Year int
	Data dataframe.DataFrame
	Err  error
}

// OK reports whether the year loaded successfully.
func (r YearResult) OK() bool { return r.Err == nil }

// Loader reads per-year FARS accident files from a data directory.
type Loader struct {
	dir     string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewLoader creates a Loader reading accident_<year>.csv.bz2 files from dir.
func NewLoader(dir string, logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{dir: dir, logger: logger, metrics: metrics}
}

// ReadYears loads each year in input order. A failure for one year is
// logged as a warning and recorded in its YearResult; it never aborts the
// batch. Successful results carry only the MONTH column plus a year tag.
func (l *Loader) ReadYears(years []int) []YearResult {
	results := make([]YearResult, 0, len(years))
	for _, year := range years {
		df, err := l.readYear(year)
		if err != nil {
			l.logger.Warn("invalid year, skipping", "year", year, "error", err)
			l.metrics.YearLoadFailures.Inc()
			results = append(results, YearResult{Year: year, Err: err})
			continue
		}

		l.metrics.YearsLoaded.Inc()
		l.metrics.RowsLoaded.Add(float64(df.Nrow()))
		results = append(results, YearResult{Year: year, Data: df})
	}
	return results
}

// readYear reads one year's file, tags every row with the year, and keeps
// only the MONTH and year columns.
func (l *Loader) readYear(year int) (dataframe.DataFrame, error) {
	start := time.Now()
	df, err := ReadData(filepath.Join(l.dir, Filename(year)))
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	l.metrics.ReadDuration.Observe(time.Since(start).Seconds())

	tag := make([]int, df.Nrow())
	for i := range tag {
		tag[i] = year
	}

	out := df.Mutate(series.New(tag, series.Int, ColYear)).Select([]string{ColMonth, ColYear})
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("select %s column for year %d: %w", ColMonth, year, out.Err)
	}
	return out, nil
}

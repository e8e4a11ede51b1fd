package fars

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// SummaryReport is a wide month-by-year accident count table. Years lists
// the requested years that actually contributed rows, in request order.
type SummaryReport struct {
	Table       dataframe.DataFrame
	Years       []int
	GeneratedAt time.Time
}

// Summarize loads the requested years, counts accidents per (year, month),
// and pivots the counts into a wide table: one row per observed month in
// ascending order, MONTH first, then one column per year that produced data.
// Years that failed to load contribute no column; a month with no
// observations for a year stays NaN rather than zero, because the grouped
// counts simply have no row for that combination.
func (l *Loader) Summarize(years []int) (SummaryReport, error) {
	results := l.ReadYears(years)

	var combined dataframe.DataFrame
	var loaded []int
	for _, r := range results {
		if !r.OK() {
			continue
		}
		if len(loaded) == 0 {
			combined = r.Data
		} else {
			combined = combined.RBind(r.Data)
			if combined.Err != nil {
				return SummaryReport{}, fmt.Errorf("combine year tables: %w", combined.Err)
			}
		}
		loaded = append(loaded, r.Year)
	}
	if len(loaded) == 0 {
		return SummaryReport{}, fmt.Errorf("no data loaded for years %v", years)
	}

	counts, months, err := countByYearMonth(combined)
	if err != nil {
		return SummaryReport{}, err
	}

	l.metrics.SummariesGenerated.Inc()
	return SummaryReport{
		Table:       pivotWide(counts, months, loaded),
		Years:       loaded,
		GeneratedAt: clock.Now(),
	}, nil
}

type yearMonth struct {
	year, month int
}

// countByYearMonth groups the combined table by (year, MONTH) and counts
// rows per group. Returns the counts plus the sorted set of observed months.
func countByYearMonth(df dataframe.DataFrame) (map[yearMonth]int, []int, error) {
	groups := df.GroupBy(ColYear, ColMonth)
	if groups.Err != nil {
		return nil, nil, fmt.Errorf("group by year and month: %w", groups.Err)
	}

	counts := make(map[yearMonth]int)
	monthSet := make(map[int]bool)
	for _, g := range groups.GetGroups() {
		year := int(g.Col(ColYear).Elem(0).Float())
		month := int(g.Col(ColMonth).Elem(0).Float())
		counts[yearMonth{year, month}] = g.Nrow()
		monthSet[month] = true
	}

	months := make([]int, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Ints(months)
	return counts, months, nil
}

// pivotWide spreads (year, month) counts into one float column per year.
// Combinations absent from counts become NaN.
func pivotWide(counts map[yearMonth]int, months, years []int) dataframe.DataFrame {
	cols := make([]series.Series, 0, len(years)+1)
	cols = append(cols, series.New(months, series.Int, ColMonth))

	for _, year := range years {
		vals := make([]float64, len(months))
		for i, month := range months {
			if n, ok := counts[yearMonth{year, month}]; ok {
				vals[i] = float64(n)
			} else {
				vals[i] = math.NaN()
			}
		}
		cols = append(cols, series.New(vals, series.Float, strconv.Itoa(year)))
	}

	return dataframe.New(cols...)
}

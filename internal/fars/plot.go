package fars

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/couchcryptid/fars-data-toolkit/internal/observability"
	"github.com/couchcryptid/fars-data-toolkit/internal/render"
)

// FARS coordinate sentinels. Values beyond these thresholds are "unknown
// position" placeholders (LONGITUD 777.7777/999.9934, LATITUDE 88.8888 and
// up), not legitimate coordinates, and must stay out of both the plotted
// points and the axis range computation.
const (
	LongitudeSentinel = 900.0
	LatitudeSentinel  = 90.0
)

// Mapper renders accident locations for one state and year.
type Mapper struct {
	dir     string
	opts    render.Options
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewMapper creates a Mapper reading accident files from dir and rendering
// with the given options.
func NewMapper(dir string, opts render.Options, logger *slog.Logger, metrics *observability.Metrics) *Mapper {
	return &Mapper{dir: dir, opts: opts, logger: logger, metrics: metrics}
}

// MapState reads the year's dataset, filters it to the given FIPS state
// code, scrubs sentinel coordinates, and writes a PNG map to outPath.
// A state code absent from the dataset is an error naming the code. A
// state/year with zero matching rows logs an informational message and
// writes nothing; that is not an error.
func (m *Mapper) MapState(state, year int, outPath string) error {
	df, err := ReadData(filepath.Join(m.dir, Filename(year)))
	if err != nil {
		return err
	}

	if !hasState(df, state) {
		return fmt.Errorf("invalid STATE number: %d", state)
	}

	sub := df.Filter(dataframe.F{Colname: ColState, Comparator: series.Eq, Comparando: state})
	if sub.Err != nil {
		return fmt.Errorf("filter state %d: %w", state, sub.Err)
	}
	if sub.Nrow() == 0 {
		m.logger.Info("no accidents to plot", "state", state, "year", year)
		return nil
	}

	points := m.scrubSentinels(sub.Col(ColLatitude).Float(), sub.Col(ColLongitude).Float())
	if len(points) == 0 {
		m.logger.Info("no accidents with known coordinates to plot",
			"state", state, "year", year, "rows", sub.Nrow())
		return nil
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := render.StateMap(f, points, m.opts); err != nil {
		return fmt.Errorf("render map for state %d: %w", state, err)
	}

	m.metrics.MapsRendered.Inc()
	m.logger.Info("state map rendered",
		"state", state, "year", year, "points", len(points), "path", outPath)
	return nil
}

// hasState reports whether the FIPS code appears in the dataset's STATE
// column.
func hasState(df dataframe.DataFrame, state int) bool {
	col := df.Col(ColState)
	if col.Err != nil {
		return false
	}
	for _, v := range col.Float() {
		if int(v) == state {
			return true
		}
	}
	return false
}

// scrubSentinels pairs up coordinates, dropping any pair where either value
// is a FARS unknown-position placeholder.
func (m *Mapper) scrubSentinels(lats, lons []float64) []render.Point {
	points := make([]render.Point, 0, len(lats))
	for i := range lats {
		if lats[i] > LatitudeSentinel || lons[i] > LongitudeSentinel {
			m.metrics.SentinelCoordinates.Inc()
			continue
		}
		points = append(points, render.Point{Lat: lats[i], Lon: lons[i]})
	}
	return points
}

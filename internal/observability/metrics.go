package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for dataset loading,
// summarizing, and map rendering.
type Metrics struct {
	YearsLoaded        prometheus.Counter
	YearLoadFailures   prometheus.Counter
	RowsLoaded         prometheus.Counter
	SummariesGenerated prometheus.Counter

	// Mapping metrics.
	MapsRendered        prometheus.Counter
	SentinelCoordinates prometheus.Counter

	ReadDuration prometheus.Histogram
}

// NewMetrics creates and registers all toolkit metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.YearsLoaded,
		m.YearLoadFailures,
		m.RowsLoaded,
		m.SummariesGenerated,
		m.MapsRendered,
		m.SentinelCoordinates,
		m.ReadDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		YearsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "years_loaded_total",
			Help:      "Total yearly accident files loaded successfully.",
		}),
		YearLoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "year_load_failures_total",
			Help:      "Total yearly accident files that failed to load.",
		}),
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "rows_loaded_total",
			Help:      "Total accident records read across all loads.",
		}),
		SummariesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "summaries_generated_total",
			Help:      "Total monthly summary tables produced.",
		}),
		MapsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "maps_rendered_total",
			Help:      "Total state accident maps rendered.",
		}),
		SentinelCoordinates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "sentinel_coordinates_total",
			Help:      "Accident rows dropped from plots due to unknown-position placeholder coordinates.",
		}),
		ReadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fars",
			Name:      "read_duration_seconds",
			Help:      "Duration of reading and parsing one yearly accident file.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

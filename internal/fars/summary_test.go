package fars_test

import (
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/fars-data-toolkit/internal/fars"
	"github.com/couchcryptid/fars-data-toolkit/internal/gen"
)

func TestSummarize(t *testing.T) {
	dir := t.TempDir()
	_, err := gen.WriteFile(dir, gen.Spec{Year: 2013, Records: 48, Seed: 1})
	require.NoError(t, err)
	_, err = gen.WriteFile(dir, gen.Spec{Year: 2014, Records: 24, Seed: 2})
	require.NoError(t, err)

	t.Run("two full years", func(t *testing.T) {
		loader, _ := newTestLoader(t, dir)
		report, err := loader.Summarize([]int{2013, 2014})
		require.NoError(t, err)

		assert.Equal(t, []int{2013, 2014}, report.Years)
		assert.Equal(t, 12, report.Table.Nrow())
		assert.Equal(t, []string{fars.ColMonth, "2013", "2014"}, report.Table.Names())

		// Months ascending 1-12.
		months := report.Table.Col(fars.ColMonth).Float()
		for i, m := range months {
			assert.Equal(t, float64(i+1), m)
		}

		// Each year's column sums back to its raw row count.
		assert.Equal(t, 48.0, sumFinite(report.Table.Col("2013").Float()))
		assert.Equal(t, 24.0, sumFinite(report.Table.Col("2014").Float()))
	})

	t.Run("missing year contributes no column", func(t *testing.T) {
		loader, logs := newTestLoader(t, dir)
		report, err := loader.Summarize([]int{2013, 2027})
		require.NoError(t, err)

		assert.Equal(t, []int{2013}, report.Years)
		assert.Equal(t, []string{fars.ColMonth, "2013"}, report.Table.Names())
		assert.Contains(t, logs.String(), "2027")
	})

	t.Run("sparse months stay missing, not zero", func(t *testing.T) {
		sparseDir := t.TempDir()
		_, err := gen.WriteFile(sparseDir, gen.Spec{Year: 2013, Records: 24, Seed: 1})
		require.NoError(t, err)
		// Three records cover only months 1-3.
		_, err = gen.WriteFile(sparseDir, gen.Spec{Year: 2014, Records: 3, Seed: 2})
		require.NoError(t, err)

		loader, _ := newTestLoader(t, sparseDir)
		report, err := loader.Summarize([]int{2013, 2014})
		require.NoError(t, err)

		col := report.Table.Col("2014").Float()
		require.Len(t, col, 12)
		for i, v := range col {
			if i < 3 {
				assert.Equal(t, 1.0, v, "month %d", i+1)
			} else {
				assert.True(t, math.IsNaN(v), "month %d should be missing", i+1)
			}
		}
	})

	t.Run("all years failing is an error", func(t *testing.T) {
		loader, _ := newTestLoader(t, t.TempDir())
		_, err := loader.Summarize([]int{1901, 1902})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no data loaded")
	})

	t.Run("report timestamp comes from the package clock", func(t *testing.T) {
		frozen := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
		fars.SetClock(clockwork.NewFakeClockAt(frozen))
		defer fars.SetClock(nil)

		loader, _ := newTestLoader(t, dir)
		report, err := loader.Summarize([]int{2013})
		require.NoError(t, err)
		assert.Equal(t, frozen, report.GeneratedAt)
	})
}

func sumFinite(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		if !math.IsNaN(v) {
			sum += v
		}
	}
	return sum
}

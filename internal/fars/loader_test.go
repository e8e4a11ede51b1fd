package fars_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/fars-data-toolkit/internal/fars"
	"github.com/couchcryptid/fars-data-toolkit/internal/gen"
	"github.com/couchcryptid/fars-data-toolkit/internal/observability"
)

// newTestLoader builds a Loader over dir whose warnings land in the
// returned buffer.
func newTestLoader(t *testing.T, dir string) (*fars.Loader, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := observability.NewLoggerTo(&logs, "debug", "text")
	return fars.NewLoader(dir, logger, observability.NewMetricsForTesting()), &logs
}

func TestReadYears(t *testing.T) {
	dir := t.TempDir()
	_, err := gen.WriteFile(dir, gen.Spec{Year: 2013, Records: 48, Seed: 1})
	require.NoError(t, err)

	t.Run("valid and missing year", func(t *testing.T) {
		loader, logs := newTestLoader(t, dir)
		results := loader.ReadYears([]int{2013, 2026})

		require.Len(t, results, 2)

		assert.Equal(t, 2013, results[0].Year)
		require.True(t, results[0].OK())
		assert.Equal(t, []string{fars.ColMonth, fars.ColYear}, results[0].Data.Names())
		assert.Equal(t, 48, results[0].Data.Nrow())
		for _, v := range results[0].Data.Col(fars.ColYear).Float() {
			assert.Equal(t, 2013.0, v)
		}

		assert.Equal(t, 2026, results[1].Year)
		assert.False(t, results[1].OK())
		assert.Contains(t, results[1].Err.Error(), fars.Filename(2026))

		assert.Contains(t, logs.String(), "invalid year")
		assert.Contains(t, logs.String(), "2026")
	})

	t.Run("order follows input", func(t *testing.T) {
		_, err := gen.WriteFile(dir, gen.Spec{Year: 2014, Records: 24, Seed: 2})
		require.NoError(t, err)

		loader, _ := newTestLoader(t, dir)
		results := loader.ReadYears([]int{2014, 2013, 2014})

		require.Len(t, results, 3)
		assert.Equal(t, 2014, results[0].Year)
		assert.Equal(t, 2013, results[1].Year)
		assert.Equal(t, 2014, results[2].Year)
		for _, r := range results {
			assert.True(t, r.OK())
		}
	})

	t.Run("all years missing never aborts", func(t *testing.T) {
		loader, logs := newTestLoader(t, t.TempDir())
		results := loader.ReadYears([]int{1901, 1902})

		require.Len(t, results, 2)
		assert.False(t, results[0].OK())
		assert.False(t, results[1].OK())
		assert.Contains(t, logs.String(), "1901")
		assert.Contains(t, logs.String(), "1902")
	})
}

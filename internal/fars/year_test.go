package fars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/fars-data-toolkit/internal/fars"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "accident_2014.csv.bz2", fars.Filename(2014))
	assert.Equal(t, "accident_1999.csv.bz2", fars.Filename(1999))
}

func TestParseYear(t *testing.T) {
	t.Run("plain integer", func(t *testing.T) {
		year, err := fars.ParseYear("2014")
		require.NoError(t, err)
		assert.Equal(t, 2014, year)
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		year, err := fars.ParseYear("  2015\n")
		require.NoError(t, err)
		assert.Equal(t, 2015, year)
	})

	t.Run("not coercible", func(t *testing.T) {
		_, err := fars.ParseYear("20x4")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "20x4")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := fars.ParseYear("")
		require.Error(t, err)
	})
}

func TestParseYears(t *testing.T) {
	years, err := fars.ParseYears([]string{"2013", "2014", "2015"})
	require.NoError(t, err)
	assert.Equal(t, []int{2013, 2014, 2015}, years)

	_, err = fars.ParseYears([]string{"2013", "twenty-fourteen"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twenty-fourteen")
}

func TestParseState(t *testing.T) {
	state, err := fars.ParseState("48")
	require.NoError(t, err)
	assert.Equal(t, 48, state)

	_, err = fars.ParseState("TX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TX")
}

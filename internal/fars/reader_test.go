package fars_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/fars-data-toolkit/internal/fars"
	"github.com/couchcryptid/fars-data-toolkit/internal/gen"
)

func TestReadData(t *testing.T) {
	t.Run("row count matches generated records", func(t *testing.T) {
		dir := t.TempDir()
		path, err := gen.WriteFile(dir, gen.Spec{Year: 2014, Records: 120, Seed: 7})
		require.NoError(t, err)

		df, err := fars.ReadData(path)
		require.NoError(t, err)
		assert.Equal(t, 120, df.Nrow())
		assert.Contains(t, df.Names(), fars.ColMonth)
		assert.Contains(t, df.Names(), fars.ColState)
		assert.Contains(t, df.Names(), fars.ColLatitude)
		assert.Contains(t, df.Names(), fars.ColLongitude)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), fars.Filename(1900))
		_, err := fars.ReadData(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), fars.Filename(1900))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("malformed csv propagates parser error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.csv")
		require.NoError(t, os.WriteFile(path, []byte("A,B\n1,2,3\n"), 0o644))

		_, err := fars.ReadData(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.csv")
	})

	t.Run("repeated reads are identical", func(t *testing.T) {
		dir := t.TempDir()
		path, err := gen.WriteFile(dir, gen.Spec{Year: 2015, Records: 60, Seed: 3})
		require.NoError(t, err)

		first, err := fars.ReadData(path)
		require.NoError(t, err)
		second, err := fars.ReadData(path)
		require.NoError(t, err)
		assert.Equal(t, first.Records(), second.Records())
	})
}

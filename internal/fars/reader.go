package fars

import (
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// Column names consumed by the loader and the mapper. FARS spells
// longitude without the final E.
const (
	ColMonth     = "MONTH"
	ColState     = "STATE"
	ColLatitude  = "LATITUDE"
	ColLongitude = "LONGITUD"
	ColYear      = "year"
)

// ReadData loads one accident file into a dataframe, one row per crash and
// one column per field. Files ending in .bz2 are decompressed while reading;
// anything else is parsed as plain CSV. A missing file is reported with the
// offending path and wraps os.ErrNotExist.
func ReadData(path string) (dataframe.DataFrame, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return dataframe.DataFrame{}, fmt.Errorf("file %q does not exist: %w", path, os.ErrNotExist)
		}
		return dataframe.DataFrame{}, fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".bz2") {
		r = bzip2.NewReader(f)
	}

	df := dataframe.ReadCSV(r, dataframe.HasHeader(true), dataframe.DetectTypes(true))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse %s: %w", path, df.Err)
	}
	return df, nil
}

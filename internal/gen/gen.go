// Package gen writes synthetic FARS accident files for tests and demos.
// Output is deterministic for a given Spec, so fixtures can be regenerated
// byte-for-byte and assertions on row counts stay stable.
package gen

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dsnet/compress/bzip2"

	"github.com/couchcryptid/fars-data-toolkit/internal/fars"
)

// Spec describes one synthetic accident file.
type Spec struct {
	Year    int
	Records int   // total rows written
	States  []int // FIPS codes cycled across rows; defaults to DefaultStates
	// Sentinels is how many trailing rows get FARS unknown-position
	// placeholders (LATITUDE 99.9999, LONGITUD 999.9934) instead of real
	// coordinates.
	Sentinels int
	Seed      int64
}

// DefaultStates are the FIPS codes used when a Spec names none.
var DefaultStates = []int{1, 6, 13, 36, 48}

// box is a rough geographic bounding box for plausible coordinates.
type box struct {
	minLat, maxLat, minLon, maxLon float64
}

// stateBoxes covers the codes in DefaultStates; anything else falls back to
// the continental US box.
var stateBoxes = map[int]box{
	1:  {30.2, 35.0, -88.5, -85.0},   // Alabama
	6:  {32.6, 41.9, -124.3, -114.2}, // California
	13: {30.4, 35.0, -85.6, -80.8},   // Georgia
	36: {40.5, 45.0, -79.7, -71.9},   // New York
	48: {25.9, 36.5, -106.5, -93.6},  // Texas
}

var conus = box{24.5, 49.3, -124.8, -66.9}

// header mirrors the columns the toolkit consumes plus a few that real FARS
// accident files carry.
var header = []string{"ST_CASE", "STATE", "MONTH", "DAY", "HOUR", "LATITUDE", "LONGITUD", "FATALS"}

// WriteFile writes accident_<year>.csv.bz2 under dir and returns its path.
// Months cycle 1-12 across rows, so any file with at least 12 records
// covers every month.
func WriteFile(dir string, spec Spec) (string, error) {
	if spec.Records <= 0 {
		return "", errors.New("spec needs at least one record")
	}
	if spec.Sentinels > spec.Records {
		return "", fmt.Errorf("sentinel rows (%d) exceed total records (%d)", spec.Sentinels, spec.Records)
	}
	states := spec.States
	if len(states) == 0 {
		states = DefaultStates
	}

	path := filepath.Join(dir, fars.Filename(spec.Year))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	bw, err := bzip2.NewWriter(f, &bzip2.WriterConfig{Level: bzip2.DefaultCompression})
	if err != nil {
		return "", fmt.Errorf("bzip2 writer: %w", err)
	}

	w := csv.NewWriter(bw)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	rng := rand.New(rand.NewSource(spec.Seed))
	for i := 0; i < spec.Records; i++ {
		state := states[i%len(states)]
		lat, lon := randomCoordinate(rng, state)
		if i >= spec.Records-spec.Sentinels {
			lat, lon = 99.9999, 999.9934
		}

		row := []string{
			strconv.Itoa(spec.Year*100000 + i + 1), // ST_CASE
			strconv.Itoa(state),
			strconv.Itoa(i%12 + 1),          // MONTH
			strconv.Itoa(rng.Intn(28) + 1),  // DAY
			strconv.Itoa(rng.Intn(24)),      // HOUR
			strconv.FormatFloat(lat, 'f', 4, 64),
			strconv.FormatFloat(lon, 'f', 4, 64),
			strconv.Itoa(rng.Intn(3) + 1), // FATALS
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	if err := bw.Close(); err != nil {
		return "", fmt.Errorf("close bzip2 stream: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

func randomCoordinate(rng *rand.Rand, state int) (lat, lon float64) {
	b, ok := stateBoxes[state]
	if !ok {
		b = conus
	}
	lat = b.minLat + rng.Float64()*(b.maxLat-b.minLat)
	lon = b.minLon + rng.Float64()*(b.maxLon-b.minLon)
	return lat, lon
}

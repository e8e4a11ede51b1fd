package fars

import (
	"fmt"
	"strconv"
	"strings"
)

// Filename returns the FARS accident file name for a year,
// e.g. Filename(2014) == "accident_2014.csv.bz2".
func Filename(year int) string {
	return fmt.Sprintf("accident_%d.csv.bz2", year)
}

// ParseYear converts a year given as text (CLI argument, config value) to an
// integer. Surrounding whitespace is tolerated.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: not convertible to an integer", s)
	}
	return year, nil
}

// ParseYears converts a list of textual years, failing on the first value
// that is not an integer.
func ParseYears(args []string) ([]int, error) {
	years := make([]int, 0, len(args))
	for _, arg := range args {
		year, err := ParseYear(arg)
		if err != nil {
			return nil, err
		}
		years = append(years, year)
	}
	return years, nil
}

// ParseState converts a FIPS state code given as text to an integer.
func ParseState(s string) (int, error) {
	state, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid state %q: not convertible to an integer", s)
	}
	return state, nil
}

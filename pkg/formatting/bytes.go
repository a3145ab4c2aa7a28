// Package formatting converts byte sizes between counts and the
// human-readable strings used in configuration and logs.
package formatting

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const step = 1024

var units = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders n in the largest base-1024 unit that keeps the value
// at or above one. Negative precision is treated as zero.
func FormatBytes(n int64, precision int) string {
	precision = max(precision, 0)

	size := float64(n)
	i := 0
	for size >= step && i < len(units)-1 {
		size /= step
		i++
	}

	if i == 0 {
		return strconv.FormatInt(n, 10) + " B"
	}
	return strconv.FormatFloat(size, 'f', precision, 64) + " " + units[i]
}

// ParseBytes reads sizes such as "10MB", "1.5 gb" or "2048". Units are
// base-1024 and case-insensitive; a bare number is a byte count.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size string")
	}

	split := strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	})
	number, unit := s, ""
	if split >= 0 {
		number, unit = s[:split], strings.TrimSpace(s[split:])
	}
	if number == "" {
		return 0, fmt.Errorf("invalid byte size: %q", s)
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size number: %w", err)
	}

	unit = strings.ToUpper(unit)
	if unit == "" {
		unit = "B"
	}

	multiplier := 1.0
	for _, u := range units {
		if u == unit {
			return int64(value * multiplier), nil
		}
		multiplier *= step
	}
	return 0, fmt.Errorf("unknown byte size unit: %q", unit)
}

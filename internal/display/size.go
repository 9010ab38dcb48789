package display

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// sizeUnits maps a unit suffix to its byte multiplier (powers of 1024).
var sizeUnits = map[string]int64{
	"B":  1,
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
	"TB": 1 << 40,
}

// sizePattern accepts an integer or decimal number with an optional unit,
// e.g. "8GB", "1.5 TB", "500mb", "1024".
var sizePattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(B|KB|MB|GB|TB)?$`)

// ParseSize converts a human-readable size string into a byte count.
// Units are case-insensitive and a bare number means bytes.
func ParseSize(s string) (int64, error) {
	m := sizePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("invalid size format %q (expected number + unit, e.g. 8GB, 500MB, 1TB)", s)
	}

	num, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size format %q: %v", s, err)
	}

	unit := strings.ToUpper(m[2])
	if unit == "" {
		unit = "B"
	}
	return int64(num * float64(sizeUnits[unit])), nil
}

package planner

import (
	"os"
	"regexp"
	"strconv"
)

var numericName = regexp.MustCompile(`^\d+$`)

// MaxNumberedDir returns the highest plain-decimal subdirectory name under
// dir, or 0 when there is none. Non-numeric directories are ignored, not an
// error. Split runs number new bins starting one past this value so repeated
// runs never collide with earlier output.
func MaxNumberedDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	max := 0
	for _, e := range entries {
		if !e.IsDir() || !numericName.MatchString(e.Name()) {
			continue
		}
		n, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}

package display

import (
	"fmt"
)

// FormatBytes returns a human-readable size using powers of 1024
// (e.g. "512.00 B", "1.50 GB"). Units match what [ParseSize] accepts.
func FormatBytes(bytes int64) string {
	size := float64(bytes)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2f TB", size)
}

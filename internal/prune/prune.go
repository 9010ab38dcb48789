// Package prune removes empty directories left behind after consolidation.
package prune

import (
	"os"
	"path/filepath"
)

// Logger is the minimal logging interface needed by Run.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// Run removes empty immediate subdirectories of root; only one level deep is
// checked. Per-entry read or remove errors are logged and skipped. It returns
// the number of directories removed (or, in dry-run mode, that would be).
func Run(root string, dryRun bool, log Logger) (int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(root, e.Name())

		contents, err := os.ReadDir(path)
		if err != nil {
			log.Error("Error reading %s: %v", path, err)
			continue
		}
		if len(contents) > 0 {
			continue
		}

		if dryRun {
			log.Info("Would delete: %s", e.Name())
		} else {
			if err := os.Remove(path); err != nil {
				log.Error("Error deleting %s: %v", path, err)
				continue
			}
			log.Info("Deleted: %s", e.Name())
		}
		count++
	}

	action := "removed"
	if dryRun {
		action = "would be removed"
	}
	if count == 1 {
		log.Success("1 empty directory %s", action)
	} else {
		log.Success("%d empty directories %s", count, action)
	}
	return count, nil
}

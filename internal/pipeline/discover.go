package pipeline

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/backmassage/dirshift/internal/planner"
)

// Discover enumerates regular files under root and returns them sorted by
// path for deterministic planning order. In recursive mode the whole tree is
// walked depth-first; in shallow mode only direct children are considered.
// Symlinks and special files are excluded.
//
// An unreadable directory is logged as a warning and skipped; discovery
// continues elsewhere and never fails the run for it.
func Discover(root string, recursive bool, log Logger) []planner.FileEntry {
	entries := collect(root, recursive, log)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries
}

func collect(dir string, recursive bool, log Logger) []planner.FileEntry {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		log.Warn("Skipping unreadable directory %s: %v", dir, err)
		return nil
	}

	var files []planner.FileEntry
	for _, e := range dirEntries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if recursive {
				files = append(files, collect(path, recursive, log)...)
			}
			continue
		}
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			log.Warn("Skipping %s: %v", path, err)
			continue
		}
		files = append(files, planner.FileEntry{Path: path, Size: info.Size()})
	}
	return files
}

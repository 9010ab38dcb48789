package exiftag

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Logger is the minimal logging interface needed by Run.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Options configures one tagging run.
type Options struct {
	Directory string
	Comment   string   // Written to Description and UserComment.
	Limit     int      // Max files to process; 0 means unlimited.
	Exclude   []string // Extensions to skip, with or without leading dot.
	DryRun    bool
}

// Stats counts the outcome of a tagging run.
type Stats struct {
	Tagged int
	Failed int
}

// Run stamps every supported media file directly under opts.Directory with
// the configured comment. Per-file exiftool failures are logged and counted
// but do not halt the run; tagging has no cross-file invariants to protect,
// unlike the move pipeline.
func Run(ctx context.Context, opts Options, log Logger) (Stats, error) {
	var stats Stats

	if RiskyPath(opts.Directory) {
		log.Warn("MTP/gvfs path detected; writes over MTP can fail or corrupt files.")
		log.Warn("Consider copying files locally first.")
	}

	files, err := collectMedia(opts)
	if err != nil {
		return stats, err
	}
	if len(files) == 0 {
		log.Info("No taggable media files found")
		return stats, nil
	}

	log.Info("Tagging %d files with comment %q", len(files), opts.Comment)

	if opts.DryRun {
		for _, path := range files {
			current := ReadDescription(path)
			if current != "" {
				log.Info("Would tag: %s (current description: %q)", filepath.Base(path), current)
			} else {
				log.Info("Would tag: %s", filepath.Base(path))
			}
		}
		return stats, nil
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("Tagging"),
		progressbar.OptionSetWidth(20),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	for _, path := range files {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		if err := AddComment(ctx, path, opts.Comment); err != nil {
			stats.Failed++
			log.Error("%v", err)
		} else {
			stats.Tagged++
			log.Debug("Tagged %s", filepath.Base(path))
		}
		_ = bar.Add(1)
	}

	log.Success("Done: %d tagged, %d failed", stats.Tagged, stats.Failed)
	if stats.Failed > 0 {
		return stats, fmt.Errorf("%d file(s) failed to tag", stats.Failed)
	}
	return stats, nil
}

// collectMedia lists supported media files directly under opts.Directory,
// sorted for deterministic order, minus excluded extensions, capped at
// opts.Limit.
func collectMedia(opts Options) ([]string, error) {
	excluded := make(map[string]bool)
	for _, e := range opts.Exclude {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		excluded["."+strings.TrimPrefix(e, ".")] = true
	}

	entries, err := os.ReadDir(opts.Directory)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !e.Type().IsRegular() {
			continue
		}
		path := filepath.Join(opts.Directory, e.Name())
		if !Supported(path) || excluded[strings.ToLower(filepath.Ext(path))] {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)

	if opts.Limit > 0 && len(files) > opts.Limit {
		files = files[:opts.Limit]
	}
	return files, nil
}

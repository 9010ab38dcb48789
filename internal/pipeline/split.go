package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/backmassage/dirshift/internal/config"
	"github.com/backmassage/dirshift/internal/display"
	"github.com/backmassage/dirshift/internal/planner"
)

// Split distributes the direct children of cfg.TargetDir into numbered
// subdirectories of at most cfg.SplitSizeBytes each, continuing the numbering
// of any earlier split run. An empty directory is a successful no-op.
func Split(cfg *config.Config, log Logger) (RunStats, error) {
	var stats RunStats
	dir := cfg.TargetDir

	startAfter, err := planner.MaxNumberedDir(dir)
	if err != nil {
		return stats, fmt.Errorf("read directory: %w", err)
	}
	if startAfter > 0 {
		log.Info("Found existing numbered directories up to %d/, starting from %d/", startAfter, startAfter+1)
	}

	entries := Discover(dir, false, log)
	if len(entries) == 0 {
		log.Info("No files found in directory")
		return stats, nil
	}

	plan, err := planner.BuildSplitPlan(entries, dir, cfg.SplitSizeBytes, startAfter)
	if err != nil {
		return stats, err
	}

	stats.Total = len(plan.Ops)
	stats.Bins = len(plan.Bins)

	for _, bin := range plan.Bins {
		if bin.Overflow {
			log.Warn("%s exceeds %s (%s), placing in its own directory",
				filepath.Base(bin.Files[0].Path),
				display.FormatBytes(cfg.SplitSizeBytes),
				display.FormatBytes(bin.Total))
		}
	}

	log.Info("Splitting %d files into %d directories (max %s each)",
		len(entries), stats.Bins, display.FormatBytes(cfg.SplitSizeBytes))

	if cfg.DryRun {
		for _, bin := range plan.Bins {
			log.Info("Directory %d: %d file%s (%s)",
				bin.Index, len(bin.Files), plural(len(bin.Files)), display.FormatBytes(bin.Total))
			for _, f := range bin.Files {
				log.Info("  %s", filepath.Base(f.Path))
			}
		}
		log.Info("%d file%s would be moved", stats.Total, plural(stats.Total))
		return stats, nil
	}

	if err := execute(plan.Ops, cfg, log, &stats); err != nil {
		return stats, err
	}

	log.Success("Done! %d file%s moved into %d directories.",
		stats.Completed, plural(stats.Completed), stats.Bins)
	return stats, nil
}

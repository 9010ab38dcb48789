package pipeline

import (
	"fmt"
	"os"

	"github.com/backmassage/dirshift/internal/config"
	"github.com/backmassage/dirshift/internal/naming"
	"github.com/backmassage/dirshift/internal/planner"
)

// Consolidate flattens every file from cfg.SourceDirs into cfg.TargetDir,
// renaming on collision. Missing source directories are skipped with a
// notice. An empty plan is a successful no-op.
func Consolidate(cfg *config.Config, log Logger) (RunStats, error) {
	var stats RunStats

	resolver := naming.NewResolver()
	if err := resolver.SeedFromDir(cfg.TargetDir); err != nil {
		return stats, fmt.Errorf("read target directory: %w", err)
	}

	var ops []planner.MoveOperation
	for _, src := range cfg.SourceDirs {
		if info, err := os.Stat(src); err != nil || !info.IsDir() {
			log.Warn("Skipping %s: not found or not accessible", src)
			continue
		}
		entries := Discover(src, true, log)
		ops = append(ops, planner.BuildConsolidatePlan(entries, cfg.TargetDir, resolver)...)
	}

	if len(ops) == 0 {
		log.Info("No files found to move.")
		return stats, nil
	}

	stats.Total = len(ops)
	for _, op := range ops {
		if op.Renamed {
			stats.Renamed++
		}
	}

	if cfg.DryRun {
		for _, op := range ops {
			log.Info("Would move: %s -> %s%s", op.Source, op.Destination, renamedSuffix(op))
		}
		log.Info("%d file%s would be moved (%d renamed to avoid duplicates)",
			stats.Total, plural(stats.Total), stats.Renamed)
		return stats, nil
	}

	if err := os.MkdirAll(cfg.TargetDir, 0o755); err != nil {
		return stats, fmt.Errorf("create target directory: %w", err)
	}
	if cfg.Verify {
		log.Info("Checksum verification enabled (SHA256)")
	}

	if err := execute(ops, cfg, log, &stats); err != nil {
		return stats, err
	}

	log.Success("%d file%s moved (%d renamed to avoid duplicates)",
		stats.Completed, plural(stats.Completed), stats.Renamed)
	return stats, nil
}

func renamedSuffix(op planner.MoveOperation) string {
	if op.Renamed {
		return " (renamed)"
	}
	return ""
}

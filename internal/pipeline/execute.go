package pipeline

import (
	"os"
	"path/filepath"

	"github.com/backmassage/dirshift/internal/config"
	"github.com/backmassage/dirshift/internal/move"
	"github.com/backmassage/dirshift/internal/planner"
)

// execute applies operations strictly in plan order, one move completing
// (success or failure) before the next begins. The first failure halts the
// run with completed moves left in place; the error is returned after the
// failing pair and progress have been reported.
func execute(ops []planner.MoveOperation, cfg *config.Config, log Logger, stats *RunStats) error {
	lastBin := 0

	for _, op := range ops {
		if op.BinIndex != 0 && op.BinIndex != lastBin {
			binDir := filepath.Dir(op.Destination)
			if err := os.MkdirAll(binDir, 0o755); err != nil {
				stats.Failed++
				log.Error("Cannot create directory %s: %v", binDir, err)
				reportHalt(log, stats)
				return err
			}
			log.Info("Directory %d:", op.BinIndex)
			lastBin = op.BinIndex
		}

		res, err := move.Move(op.Source, op.Destination, cfg.Verify)
		if err != nil {
			stats.Failed++
			log.Error("FAILED: %s -> %s", op.Source, op.Destination)
			log.Error("%v", err)
			reportHalt(log, stats)
			return err
		}

		if res.CrossDevice {
			log.Debug("Cross-device move, used copy+delete: %s", op.Source)
			if res.Checksum != "" {
				log.Info("  [verified] SHA256: %s", res.Checksum)
			}
		}
		log.Info("Moved: %s -> %s%s", op.Source, op.Destination, renamedSuffix(op))
		stats.Completed++
		stats.TotalBytes += op.Size
	}
	return nil
}

func reportHalt(log Logger, stats *RunStats) {
	log.Error("Stopping. %d/%d file%s moved successfully.",
		stats.Completed, stats.Total, plural(stats.Total))
	log.Error("Re-run to continue with remaining files.")
}

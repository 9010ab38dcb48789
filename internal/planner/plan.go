package planner

import (
	"path/filepath"
	"strconv"

	"github.com/backmassage/dirshift/internal/naming"
)

// BuildConsolidatePlan assigns each entry a unique destination inside
// targetDir, consulting (and growing) the resolver's claim set. Operations
// come back in entry order, so a sorted scan yields a deterministic plan.
func BuildConsolidatePlan(entries []FileEntry, targetDir string, resolver *naming.Resolver) []MoveOperation {
	ops := make([]MoveOperation, 0, len(entries))
	for _, e := range entries {
		name := filepath.Base(e.Path)
		dest := resolver.Resolve(targetDir, name)
		ops = append(ops, MoveOperation{
			Source:      e.Path,
			Destination: dest,
			Size:        e.Size,
			Renamed:     dest != filepath.Join(targetDir, name),
		})
	}
	return ops
}

// SplitPlan is the full outcome of split planning: the packed bins and the
// flat operation list derived from them, in execution order.
type SplitPlan struct {
	Bins []Bin
	Ops  []MoveOperation
}

// BuildSplitPlan packs entries into bins of at most capacity bytes and lays
// out one numbered subdirectory of dir per bin. Numbering starts one past
// startAfter (the highest pre-existing numbered directory).
func BuildSplitPlan(entries []FileEntry, dir string, capacity int64, startAfter int) (*SplitPlan, error) {
	bins, err := Pack(entries, capacity)
	if err != nil {
		return nil, err
	}

	plan := &SplitPlan{Bins: bins}
	for i := range bins {
		bins[i].Index = startAfter + i + 1
		binDir := filepath.Join(dir, strconv.Itoa(bins[i].Index))
		for _, f := range bins[i].Files {
			plan.Ops = append(plan.Ops, MoveOperation{
				Source:      f.Path,
				Destination: filepath.Join(binDir, filepath.Base(f.Path)),
				Size:        f.Size,
				BinIndex:    bins[i].Index,
			})
		}
	}
	return plan, nil
}

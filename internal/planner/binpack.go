package planner

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidCapacity is returned by Pack for a non-positive capacity.
var ErrInvalidCapacity = errors.New("capacity must be positive")

// Pack partitions entries into bins of at most capacity bytes using
// first-fit-decreasing: sort by size descending (stable, so scan order breaks
// ties), then place each entry into the first bin with room, opening a new
// bin when none fits. An entry larger than capacity becomes its own bin,
// flagged as overflow.
//
// The heuristic does not guarantee a minimal bin count (exact bin packing is
// NP-hard); it is deterministic and single-pass after the sort, and that
// trade-off is intentional. Bin indices are left zero for the caller to
// assign.
func Pack(entries []FileEntry, capacity int64) ([]Bin, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidCapacity, capacity)
	}

	sorted := make([]FileEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size > sorted[j].Size
	})

	var bins []Bin
	for _, e := range sorted {
		if e.Size > capacity {
			bins = append(bins, Bin{Files: []FileEntry{e}, Total: e.Size, Overflow: true})
			continue
		}

		placed := false
		for i := range bins {
			if bins[i].Total+e.Size <= capacity {
				bins[i].Files = append(bins[i].Files, e)
				bins[i].Total += e.Size
				placed = true
				break
			}
		}
		if !placed {
			bins = append(bins, Bin{Files: []FileEntry{e}, Total: e.Size})
		}
	}
	return bins, nil
}

package planner

// FileEntry is an immutable scan-time snapshot of one regular file. If the
// file changes or disappears between scan and move, the move fails at
// execution time rather than being silently tolerated.
type FileEntry struct {
	Path string
	Size int64
}

// MoveOperation pairs a source file with its planned destination. Produced by
// planning, consumed by execution. Destinations are unique across all
// operations of a run.
type MoveOperation struct {
	Source      string
	Destination string
	Size        int64
	Renamed     bool // Destination carries a collision-avoidance suffix.
	BinIndex    int  // Split workflow only; zero for consolidation.
}

// Bin is one planned destination subdirectory for the split workflow.
// Total stays within the configured capacity except for overflow bins, which
// hold exactly one file larger than the capacity.
type Bin struct {
	Index    int
	Files    []FileEntry
	Total    int64
	Overflow bool
}

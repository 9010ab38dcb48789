// Package planner turns scanned file lists into move plans. Planning is pure:
// it reads nothing but its inputs (bin numbering excepted, which reads the
// existing directory names once) and mutates nothing on disk.
//
// Two planners exist, one per workflow:
//
//   - BuildConsolidatePlan assigns each file a collision-free destination
//     inside a single flat target directory.
//   - BuildSplitPlan partitions files into numbered size-bounded
//     subdirectories using first-fit-decreasing bin packing.
package planner

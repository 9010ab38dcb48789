// Package pipeline orchestrates both redistribution workflows as the same
// state sequence: scan, plan, then either a dry-run report or sequential
// execution, then a summary.
//
// Execution is strictly sequential and stops at the first failed move:
// completed moves are real, already-verified work and stay in place, and
// re-running the tool is the recovery path (moved files no longer appear in
// the next scan).
package pipeline

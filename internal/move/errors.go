package move

import "errors"

// Sentinel errors for the failure classes of a single move. Callers match
// them with errors.Is; the wrapped form carries the paths involved.
var (
	// ErrDestinationExists means the destination path was already occupied.
	// No-clobber is absolute: the move is refused before anything is touched.
	ErrDestinationExists = errors.New("destination already exists (no-clobber)")

	// ErrCopySizeMismatch means a cross-filesystem copy produced a file of a
	// different size. The partial destination has been removed.
	ErrCopySizeMismatch = errors.New("copy verification failed: size mismatch")

	// ErrChecksumMismatch means a cross-filesystem copy produced different
	// content. The corrupt destination has been removed.
	ErrChecksumMismatch = errors.New("checksum verification failed")
)

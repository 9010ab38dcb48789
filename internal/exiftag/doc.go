// Package exiftag stamps media files with a description comment via the
// external exiftool binary, forcing sync services to treat them as new
// uploads. It composes with the move pipeline only through the filesystem:
// it receives a directory of already-consolidated files and touches nothing
// else.
package exiftag

// Package move implements the safe-move primitive: atomic rename when
// possible, verified copy-then-delete across filesystems, and strict
// no-clobber semantics. On any failure the source file is left untouched and
// no partial destination remains.
package move

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/codingsince1985/checksum"
)

// Result describes a completed move.
type Result struct {
	CrossDevice bool   // The copy+delete fallback was taken.
	Checksum    string // SHA256 of the content when verification ran.
}

// renameOutcome classifies the initial rename attempt.
type renameOutcome int

const (
	renamed renameOutcome = iota
	crossDevice
	otherError
)

// classifyRename maps the error from os.Rename onto an explicit outcome so
// the caller dispatches with a switch instead of inspecting errno inline.
func classifyRename(err error) renameOutcome {
	if err == nil {
		return renamed
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		return crossDevice
	}
	return otherError
}

// Move relocates src to dest. The destination must not exist. A rename is
// attempted first; when src and dest live on different filesystems the move
// falls back to copy (preserving timestamps), size comparison, optional
// SHA256 comparison, and only then source deletion.
func Move(src, dest string, verify bool) (Result, error) {
	var res Result

	if _, err := os.Lstat(dest); err == nil {
		return res, fmt.Errorf("%w: %s", ErrDestinationExists, dest)
	}

	if verify {
		sum, err := checksum.SHA256sum(src)
		if err != nil {
			return res, fmt.Errorf("checksum %s: %w", src, err)
		}
		res.Checksum = sum
	}

	err := os.Rename(src, dest)
	switch classifyRename(err) {
	case renamed:
		return res, nil
	case crossDevice:
		res.CrossDevice = true
	default:
		return res, fmt.Errorf("rename %s -> %s: %w", src, dest, err)
	}

	if err := copyAndDelete(src, dest, res.Checksum, verify); err != nil {
		return res, err
	}
	return res, nil
}

// copyAndDelete performs the cross-filesystem fallback. The destination is
// removed on every failure path; src is deleted only after the copy has been
// confirmed intact.
func copyAndDelete(src, dest, srcSum string, verify bool) error {
	if err := copyFile(src, dest); err != nil {
		os.Remove(dest)
		return fmt.Errorf("copy %s -> %s: %w", src, dest, err)
	}

	if err := verifyCopy(src, dest, srcSum, verify); err != nil {
		return err
	}

	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source %s: %w", src, err)
	}
	return nil
}

// copyFile copies src to dest preserving mode and modification time.
func copyFile(src, dest string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_EXCL, srcInfo.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Chtimes(dest, srcInfo.ModTime(), srcInfo.ModTime())
}

// verifyCopy compares sizes (always) and checksums (when verify is set)
// between src and dest, removing dest on any mismatch.
func verifyCopy(src, dest, srcSum string, verify bool) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		os.Remove(dest)
		return fmt.Errorf("stat source %s: %w", src, err)
	}
	destInfo, err := os.Stat(dest)
	if err != nil {
		os.Remove(dest)
		return fmt.Errorf("stat destination %s: %w", dest, err)
	}
	if srcInfo.Size() != destInfo.Size() {
		os.Remove(dest)
		return fmt.Errorf("%w for %s (source %d bytes, destination %d bytes)",
			ErrCopySizeMismatch, src, srcInfo.Size(), destInfo.Size())
	}

	if verify {
		destSum, err := checksum.SHA256sum(dest)
		if err != nil {
			os.Remove(dest)
			return fmt.Errorf("checksum %s: %w", dest, err)
		}
		if destSum != srcSum {
			os.Remove(dest)
			return fmt.Errorf("%w for %s: source=%s dest=%s",
				ErrChecksumMismatch, src, srcSum, destSum)
		}
	}
	return nil
}

package exiftag

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoTagsWritten means exiftool exited zero but reported that no file was
// updated (it does this for unsupported or write-protected files).
var ErrNoTagsWritten = errors.New("exiftool wrote no tags")

// ExecResult holds the outcome of a single exiftool invocation.
type ExecResult struct {
	Stdout string
	Stderr string
	Err    error
}

// tagArgs builds the exiftool argument list for stamping one file.
// Description works across JPEG, HEIC, MOV, MP4 and PNG; UserComment is the
// fallback for EXIF-only readers.
func tagArgs(path, comment string) []string {
	return []string{
		"-overwrite_original",
		"-Description=" + comment,
		"-UserComment=" + comment,
		path,
	}
}

// runExiftool executes exiftool with args, capturing stdout and stderr for
// classification.
func runExiftool(ctx context.Context, args ...string) ExecResult {
	cmd := exec.CommandContext(ctx, "exiftool", args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	return ExecResult{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}

// AddComment writes comment into the Description and UserComment tags of
// path, replacing the file in place.
func AddComment(ctx context.Context, path, comment string) error {
	result := runExiftool(ctx, tagArgs(path, comment)...)
	if result.Err != nil {
		detail := strings.TrimSpace(result.Stderr)
		if detail == "" {
			return fmt.Errorf("exiftool %s: %w", path, result.Err)
		}
		return fmt.Errorf("exiftool %s: %s", path, detail)
	}
	if strings.Contains(result.Stdout, "0 image files updated") {
		return fmt.Errorf("%w: %s", ErrNoTagsWritten, path)
	}
	return nil
}

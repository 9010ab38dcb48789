// Package config holds runtime configuration: defaults, validation, and the
// path-overlap checks that run before any filesystem mutation.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings for one invocation. It is populated by
// [DefaultConfig] and then mutated by the CLI layer before being passed
// (by pointer) to packages that need it.
type Config struct {
	// Paths (set from positional args).
	TargetDir  string
	SourceDirs []string

	// Behavior flags.
	DryRun bool
	Verify bool // SHA256-verify cross-filesystem copies.

	// Split settings.
	SplitSizeBytes int64 // Parsed from the --split-size flag by the CLI layer.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// the CLI layer applies flag values.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields. It runs before any I/O.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.SplitSizeBytes < 0 {
		return fmt.Errorf("split size must be positive, got %d bytes", c.SplitSizeBytes)
	}
	return nil
}

// CheckOverlap rejects unsafe relationships between the target directory and
// any source directory: exact match or nesting in either direction. All paths
// are resolved to absolute, symlink-free form before comparison.
func CheckOverlap(targetDir string, sourceDirs []string) error {
	targetAbs, err := ResolvePath(targetDir)
	if err != nil {
		return err
	}

	for _, src := range sourceDirs {
		srcAbs, err := ResolvePath(src)
		if err != nil {
			return err
		}

		switch {
		case targetAbs == srcAbs:
			return fmt.Errorf("target directory %q is the same as source directory %q", targetDir, src)
		case isSubpath(targetAbs, srcAbs):
			return fmt.Errorf("target directory %q is inside source directory %q", targetDir, src)
		case isSubpath(srcAbs, targetAbs):
			return fmt.Errorf("source directory %q is inside target directory %q", src, targetDir)
		}
	}
	return nil
}

// ResolvePath returns the absolute path with symlinks resolved. Paths that do
// not exist yet (e.g. a target directory created later) resolve to their
// plain absolute form.
func ResolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// isSubpath reports whether child is strictly inside parent. Both arguments
// must be absolute paths.
func isSubpath(child, parent string) bool {
	sep := string(filepath.Separator)
	return child != parent && strings.HasPrefix(child+sep, parent+sep)
}

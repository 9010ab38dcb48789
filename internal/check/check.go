// Package check provides external-tool diagnostics for the tag command.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrExiftoolNotFound is returned when exiftool is missing from PATH.
var ErrExiftoolNotFound = errors.New("exiftool not found on PATH (install perl-image-exiftool)")

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// Exiftool verifies that exiftool is available. Called before any tagging.
func Exiftool() error {
	if _, err := exec.LookPath("exiftool"); err != nil {
		return ErrExiftoolNotFound
	}
	return nil
}

// RunCheck runs the interactive check flow: prints exiftool availability and
// version. Returns false when a required tool is missing.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")

	if err := Exiftool(); err != nil {
		log.Error("%v", err)
		return false
	}

	out, err := exec.Command("exiftool", "-ver").Output()
	if err != nil {
		log.Warn("exiftool found but -ver failed: %v", err)
		return true
	}
	log.Success("exiftool: v%s", strings.TrimSpace(string(out)))
	return true
}

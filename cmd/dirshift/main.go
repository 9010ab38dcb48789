// Command dirshift redistributes files between directories without losing
// data: it consolidates source trees into one flat target, splits a flat
// directory into numbered size-bounded subdirectories, prunes empty
// directories, and stamps media files to force re-upload.
package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/backmassage/dirshift/internal/check"
	"github.com/backmassage/dirshift/internal/config"
	"github.com/backmassage/dirshift/internal/display"
	"github.com/backmassage/dirshift/internal/exiftag"
	"github.com/backmassage/dirshift/internal/logging"
	"github.com/backmassage/dirshift/internal/pipeline"
	"github.com/backmassage/dirshift/internal/prune"
)

// version is injected at build time via -ldflags; the default covers plain
// "go build".
var version = "1.2.0"

// Globals are flags shared by every subcommand.
type Globals struct {
	DryRun  bool   `short:"n" help:"Preview changes without touching any files."`
	Verbose bool   `short:"v" help:"Verbose output."`
	Color   string `enum:"auto,always,never" default:"auto" help:"Colored output: auto|always|never."`
	Log     string `short:"l" placeholder:"PATH" help:"Append logs to a file."`
}

// baseConfig maps the global flags onto a fresh Config.
func (g *Globals) baseConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.DryRun = g.DryRun
	cfg.Verbose = g.Verbose
	cfg.ColorMode = config.ColorMode(g.Color)
	cfg.LogFile = g.Log
	return cfg
}

// setup validates cfg, builds the logger, and prints the banner. Callers must
// Close the returned logger.
func setup(cfg *config.Config) (*logging.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	display.PrintBanner()
	return log, nil
}

// ConsolidateCmd flattens files from multiple source trees into one target
// directory, renaming on collision.
type ConsolidateCmd struct {
	Verify     bool     `help:"Verify SHA256 checksums after cross-filesystem copies (slower but safer)."`
	TargetDir  string   `arg:"" help:"Directory to move files into."`
	SourceDirs []string `arg:"" help:"Source directories to consolidate."`
}

func (c *ConsolidateCmd) Run(g *Globals) error {
	cfg := g.baseConfig()
	cfg.Verify = c.Verify
	cfg.TargetDir = config.NormalizeDirArg(c.TargetDir)
	for _, src := range c.SourceDirs {
		cfg.SourceDirs = append(cfg.SourceDirs, config.NormalizeDirArg(src))
	}

	if err := config.CheckOverlap(cfg.TargetDir, cfg.SourceDirs); err != nil {
		return err
	}

	log, err := setup(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.DryRun {
		log.Warn("DRY RUN - no files will be moved")
	}

	_, err = pipeline.Consolidate(&cfg, log)
	return err
}

// SplitCmd distributes a directory's files into numbered subdirectories so
// that none exceeds the size budget.
type SplitCmd struct {
	SplitSize string `short:"s" default:"8GB" help:"Size limit per subdirectory (e.g. 8GB, 500MB, 1TB)."`
	Directory string `arg:"" type:"existingdir" help:"Directory containing files to split."`
}

func (c *SplitCmd) Run(g *Globals) error {
	cfg := g.baseConfig()
	cfg.TargetDir = config.NormalizeDirArg(c.Directory)

	bytes, err := display.ParseSize(c.SplitSize)
	if err != nil {
		return err
	}
	if bytes <= 0 {
		return fmt.Errorf("split size must be positive, got %q", c.SplitSize)
	}
	cfg.SplitSizeBytes = bytes

	log, err := setup(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.DryRun {
		log.Warn("DRY RUN - no files will be moved")
	}

	_, err = pipeline.Split(&cfg, log)
	return err
}

// PruneCmd removes empty immediate subdirectories.
type PruneCmd struct {
	Root string `short:"r" default:"." type:"existingdir" help:"Root directory to scan for empty subdirectories."`
}

func (c *PruneCmd) Run(g *Globals) error {
	cfg := g.baseConfig()

	log, err := setup(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.DryRun {
		log.Warn("DRY RUN - no directories will be deleted")
	}

	_, err = prune.Run(config.NormalizeDirArg(c.Root), cfg.DryRun, log)
	return err
}

// TagCmd stamps media files with a description comment to force re-upload.
type TagCmd struct {
	Comment   string `short:"c" default:"synced" help:"Comment to write into Description/UserComment."`
	Limit     int    `help:"Max files to process (0 = unlimited)."`
	Exclude   string `short:"x" placeholder:"EXT,EXT" help:"Comma-separated extensions to exclude (e.g. mov,mp4)."`
	Directory string `arg:"" type:"existingdir" help:"Directory containing media files."`
}

func (c *TagCmd) Run(g *Globals) error {
	cfg := g.baseConfig()

	log, err := setup(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if err := check.Exiftool(); err != nil {
		return err
	}

	if cfg.DryRun {
		log.Warn("DRY RUN - no files will be modified")
	}

	// Cancel on SIGINT/SIGTERM so tagging stops between files.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := exiftag.Options{
		Directory: config.NormalizeDirArg(c.Directory),
		Comment:   c.Comment,
		Limit:     c.Limit,
		Exclude:   splitList(c.Exclude),
		DryRun:    cfg.DryRun,
	}
	_, err = exiftag.Run(ctx, opts, log)
	return err
}

// CheckCmd verifies external tool availability.
type CheckCmd struct{}

func (c *CheckCmd) Run(g *Globals) error {
	cfg := g.baseConfig()

	log, err := setup(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if !check.RunCheck(log) {
		return errors.New("system check failed")
	}
	return nil
}

var cli struct {
	Globals

	Consolidate ConsolidateCmd   `cmd:"" help:"Move files from source directories into one flat target."`
	Split       SplitCmd         `cmd:"" help:"Split a directory's files into numbered size-bounded subdirectories."`
	Prune       PruneCmd         `cmd:"" help:"Remove empty immediate subdirectories."`
	Tag         TagCmd           `cmd:"" help:"Stamp media files with a comment to force re-upload."`
	Check       CheckCmd         `cmd:"" help:"Verify external tool availability."`
	Version     kong.VersionFlag `short:"V" help:"Print version and exit."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("dirshift"),
		kong.Description("Redistribute files between directories without losing data."),
		kong.Vars{"version": "dirshift v" + version},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// splitList parses a comma-separated flag value into its parts; empty input
// yields nil.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

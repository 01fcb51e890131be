package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/Mheaus/package-lock-changes/internal/domain/entities"
	"github.com/Mheaus/package-lock-changes/internal/domain/repositories"
	"github.com/Mheaus/package-lock-changes/internal/lockfile"
)

// Local is the interface for the local command (standalone mode).
type Local interface {
	Execute(ctx context.Context, opts LocalOptions) error
}

// LocalOptions holds runtime options for the local mode.
type LocalOptions struct {
	RepoDir              string
	Path                 string
	BaseRef              string
	CollapsibleThreshold int
	Verbose              bool
}

// LocalCommand diffs the worktree lockfile against the base revision
// of the local clone and prints the rendered report, no network needed.
type LocalCommand struct {
	local   repositories.LocalRepository
	parsers *lockfile.Registry
	out     io.Writer
}

// NewLocalCommand creates a new LocalCommand.
func NewLocalCommand(
	local repositories.LocalRepository,
	parsers *lockfile.Registry,
) *LocalCommand {
	return &LocalCommand{
		local:   local,
		parsers: parsers,
		out:     os.Stdout,
	}
}

// SetOutput redirects the rendered report, used by tests.
func (it *LocalCommand) SetOutput(out io.Writer) {
	it.out = out
}

// Execute runs the local diff.
func (it *LocalCommand) Execute(_ context.Context, opts LocalOptions) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	parser, err := it.parsers.ForPath(opts.Path)
	if err != nil {
		return err
	}

	currentRaw, err := os.ReadFile(filepath.Join(opts.RepoDir, opts.Path))
	if err != nil {
		return fmt.Errorf("failed to read local lockfile %q: %w", opts.Path, err)
	}
	current, err := parser.Parse(currentRaw)
	if err != nil {
		return err
	}

	previousRaw, err := it.local.BaseFileContent(opts.RepoDir, opts.BaseRef, opts.Path)
	if err != nil {
		return err
	}
	previous, err := parser.Parse([]byte(previousRaw))
	if err != nil {
		return err
	}

	changes := entities.Diff(previous, current)
	if len(changes) == 0 {
		logger.Infof("No changes in %q", opts.Path)
		return nil
	}

	_, err = fmt.Fprintln(it.out, entities.RenderReport(opts.Path, changes, opts.CollapsibleThreshold))
	return err
}

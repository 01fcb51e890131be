package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Mheaus/package-lock-changes/config"
	"github.com/Mheaus/package-lock-changes/internal/domain/commands"
	"github.com/Mheaus/package-lock-changes/internal/domain/entities"
)

// LocalController handles the root positional-path form (local mode).
type LocalController struct {
	command commands.Local
}

// NewLocalController creates a new LocalController.
func NewLocalController(command commands.Local) *LocalController {
	return &LocalController{command: command}
}

// GetBind returns the Cobra command metadata for the local controller.
func (it *LocalController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "local [repo-dir]",
		Short: "Diff the lockfile against a base revision of the local clone",
		Long: `Diff the worktree lockfile against the same path at a base
revision of the local Git clone and print the rendered markdown report.

No network access or token is needed; the base content is read straight
from the clone's object store.`,
	}
}

// Execute runs the local mode.
func (it *LocalController) Execute(cmd *cobra.Command, args []string) error {
	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}

	path, _ := cmd.Flags().GetString("path")
	if path == "" {
		path = config.DefaultPath
	}
	baseRef, _ := cmd.Flags().GetString("base")
	verbose, _ := cmd.Flags().GetBool("verbose")

	threshold := config.DefaultCollapsibleThreshold
	if cmd.Flags().Changed("threshold") {
		threshold, _ = cmd.Flags().GetInt("threshold")
	}

	return it.command.Execute(context.Background(), commands.LocalOptions{
		RepoDir:              repoDir,
		Path:                 path,
		BaseRef:              baseRef,
		CollapsibleThreshold: threshold,
		Verbose:              verbose,
	})
}

// AddFlags adds the local-specific flags to the given Cobra command.
func (it *LocalController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("base", "",
		"Base revision to diff against (default: origin/HEAD, then main/master)")
}

package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Mheaus/package-lock-changes/config"
	"github.com/Mheaus/package-lock-changes/internal/domain/commands"
	"github.com/Mheaus/package-lock-changes/internal/domain/entities"
)

// RunController handles the "run" subcommand (CI mode).
type RunController struct {
	command commands.Comment
}

// NewRunController creates a new RunController.
func NewRunController(command commands.Comment) *RunController {
	return &RunController{command: command}
}

// GetBind returns the Cobra command metadata for the run controller.
func (it *RunController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run",
		Short: "Diff the lockfile against the base branch and publish the PR comment",
		Long: `Read the local lockfile, fetch the same path from the pull
request's base branch through the GitHub API, diff the pinned versions,
and publish the rendered report as a PR comment.

This is the main command intended to run inside a pull_request workflow.
An existing report comment is replaced unless updateComment is disabled.`,
	}
}

// Execute runs the CI mode.
func (it *RunController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	configPath, _ := cmd.Flags().GetString("config")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.Load(configPath, flagOverrides(cmd))
	if err != nil {
		return err
	}

	pr, err := entities.NewPullRequestContext()
	if err != nil {
		return err
	}

	logger.Infof("Diffing %q on %s/%s#%d (base %q)",
		cfg.Path, pr.Owner, pr.Repo, pr.Number, pr.BaseRef)

	return it.command.Execute(ctx, cfg, *pr, commands.CommentOptions{
		DryRun:  dryRun,
		Verbose: verbose,
	})
}

// AddFlags adds the run-specific flags to the given Cobra command.
func (it *RunController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("update-comment", "",
		"Replace the previous report comment instead of creating a new one (true/yes/y/on, false/no/n/off)")
	cmd.Flags().Bool("dry-run", false,
		"Log the rendered comment instead of publishing it")
}

// flagOverrides collects the CLI flags that win over config file and
// env inputs.
func flagOverrides(cmd *cobra.Command) config.Overrides {
	overrides := config.Overrides{}
	overrides.Path, _ = cmd.Flags().GetString("path")
	overrides.Token, _ = cmd.Flags().GetString("token")
	overrides.UpdateComment, _ = cmd.Flags().GetString("update-comment")
	if cmd.Flags().Changed("threshold") {
		threshold, _ := cmd.Flags().GetInt("threshold")
		overrides.CollapsibleThreshold = &threshold
	}
	return overrides
}

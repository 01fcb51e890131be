package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Mheaus/package-lock-changes/config"
	"github.com/Mheaus/package-lock-changes/internal"
	"github.com/Mheaus/package-lock-changes/internal/infrastructure/controllers"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "lockchanges",
		Short: "Lockfile change reporter for pull requests",
		Long: `Compute a human-readable diff between two versions of a package
manager lockfile (base branch vs. pull-request branch) and publish the
formatted summary as a pull-request comment.

Supported lockfiles: package-lock.json, yarn.lock, .terraform.lock.hcl,
and go.mod.

Usage modes:
  lockchanges run              CI mode: fetch the base lockfile through the
                               GitHub API and upsert the PR comment
  lockchanges local [dir]      Local mode: diff against a base revision of
                               the local clone and print the report`,
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect .lockchanges.yaml)")
	cmd.PersistentFlags().String("path", "",
		"Lockfile path relative to the repository root (default: "+config.DefaultPath+")")
	cmd.PersistentFlags().String("token", "",
		"Auth token for the GitHub API (overrides the token input and GITHUB_TOKEN)")
	cmd.PersistentFlags().Int("threshold", config.DefaultCollapsibleThreshold,
		"Change count at which the report is collapsed behind a summary")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:           bind.Use,
			Short:         bind.Short,
			Long:          bind.Long,
			SilenceUsage:  true,
			SilenceErrors: true,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		if _, ok := ctrl.(*controllers.LocalController); ok {
			subCmd.Args = cobra.MaximumNArgs(1)
		}
		ctrl.AddFlags(subCmd)

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	// Inject controllers via DIG and add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'lockchanges': %s", err)
	}
}

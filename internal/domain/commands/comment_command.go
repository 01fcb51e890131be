package commands

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/Mheaus/package-lock-changes/config"
	"github.com/Mheaus/package-lock-changes/internal/domain/entities"
	"github.com/Mheaus/package-lock-changes/internal/domain/repositories"
	"github.com/Mheaus/package-lock-changes/internal/lockfile"
	infraRepos "github.com/Mheaus/package-lock-changes/internal/infrastructure/repositories"
)

// Comment is the interface for the comment command (CI mode).
type Comment interface {
	Execute(
		ctx context.Context,
		cfg *config.Config,
		pr entities.PullRequestContext,
		opts CommentOptions,
	) error
}

// CommentOptions holds runtime options for a single run.
type CommentOptions struct {
	DryRun  bool
	Verbose bool
}

// CommentCommand runs the full pipeline: read the local lockfile,
// fetch the base-branch copy, diff, render, and upsert the PR comment.
type CommentCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
	parsers          *lockfile.Registry
}

// NewCommentCommand creates a new CommentCommand with the given registries.
func NewCommentCommand(
	providerRegistry *infraRepos.ProviderRegistry,
	parsers *lockfile.Registry,
) *CommentCommand {
	return &CommentCommand{
		providerRegistry: providerRegistry,
		parsers:          parsers,
	}
}

// Execute runs the pipeline. The first failure aborts the run; nothing
// is published on a partial result.
func (it *CommentCommand) Execute(
	ctx context.Context,
	cfg *config.Config,
	pr entities.PullRequestContext,
	opts CommentOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	parser, err := it.parsers.ForPath(cfg.Path)
	if err != nil {
		return err
	}

	currentRaw, err := os.ReadFile(cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to read local lockfile %q: %w", cfg.Path, err)
	}
	current, err := parser.Parse(currentRaw)
	if err != nil {
		return err
	}

	provider, err := it.providerRegistry.Get("github", cfg.Token)
	if err != nil {
		return err
	}

	logger.Infof("Fetching %q from base branch %q...", cfg.Path, pr.BaseRef)
	previousRaw, err := provider.GetBaseFileContent(ctx, pr, cfg.Path)
	if err != nil {
		return err
	}
	previous, err := parser.Parse([]byte(previousRaw))
	if err != nil {
		return err
	}

	changes := entities.Diff(previous, current)
	if len(changes) == 0 {
		logger.Infof("No changes in %q, nothing to publish", cfg.Path)
		return nil
	}
	logger.Infof("Found %d changed package(s) in %q", len(changes), cfg.Path)

	body := entities.RenderReport(cfg.Path, changes, cfg.CollapsibleThreshold)

	if opts.DryRun {
		logger.Infof("[DRY RUN] Would publish comment:\n%s", body)
		return nil
	}

	return it.publish(ctx, provider, pr, cfg, body)
}

// publish finds the previous report comment and replaces it, or creates
// a new one. With UpdateComment disabled a new comment is always created.
func (it *CommentCommand) publish(
	ctx context.Context,
	provider repositories.ProviderRepository,
	pr entities.PullRequestContext,
	cfg *config.Config,
	body string,
) error {
	if cfg.UpdateComment {
		existing, err := provider.FindComment(ctx, pr, entities.MarkerHeader(cfg.Path))
		if err != nil {
			return err
		}
		if existing != nil {
			logger.Infof("Updating comment %d on PR #%d", existing.ID, pr.Number)
			return provider.UpdateComment(ctx, pr, existing.ID, body)
		}
	}

	logger.Infof("Creating comment on PR #%d", pr.Number)
	return provider.CreateComment(ctx, pr, body)
}

package repositories

import (
	"context"

	"github.com/Mheaus/package-lock-changes/internal/domain/entities"
)

// ProviderRepository abstracts the Git hosting service: fetching a file
// from the pull request's base branch and managing the report comment.
type ProviderRepository interface {
	// Name returns the provider identifier (e.g. "github").
	Name() string

	// GetBaseFileContent fetches the decoded content of path from the
	// pull request's base branch.
	GetBaseFileContent(
		ctx context.Context,
		pr entities.PullRequestContext,
		path string,
	) (string, error)

	// FindComment returns the latest comment on the pull request that
	// was authored by the automation identity and whose body starts
	// with header, or nil when there is none.
	FindComment(
		ctx context.Context,
		pr entities.PullRequestContext,
		header string,
	) (*entities.Comment, error)

	// CreateComment posts a new comment on the pull request.
	CreateComment(ctx context.Context, pr entities.PullRequestContext, body string) error

	// UpdateComment replaces the body of an existing comment.
	UpdateComment(ctx context.Context, pr entities.PullRequestContext, id int64, body string) error
}

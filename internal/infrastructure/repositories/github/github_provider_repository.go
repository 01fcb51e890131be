package github

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v66/github"

	"github.com/Mheaus/package-lock-changes/internal/domain/entities"
	"github.com/Mheaus/package-lock-changes/internal/domain/repositories"
)

const (
	providerName = "github"
	perPage      = 100

	// botLogin is the identity the Actions runner posts comments as.
	botLogin = "github-actions[bot]"
)

// GitHubProviderRepository implements repositories.ProviderRepository
// on top of the GitHub REST API.
type GitHubProviderRepository struct {
	client *gh.Client
}

// NewProviderRepository creates a new GitHub provider with the given token.
func NewProviderRepository(token string) repositories.ProviderRepository {
	return &GitHubProviderRepository{
		client: gh.NewClient(nil).WithAuthToken(token),
	}
}

func (p *GitHubProviderRepository) Name() string { return providerName }

// GetBaseFileContent fetches path from the pull request's base branch
// through the repository contents API. go-github decodes the base64
// payload the API returns.
func (p *GitHubProviderRepository) GetBaseFileContent(
	ctx context.Context,
	pr entities.PullRequestContext,
	path string,
) (string, error) {
	fileContent, _, _, err := p.client.Repositories.GetContents(
		ctx, pr.Owner, pr.Repo, path,
		&gh.RepositoryContentGetOptions{Ref: pr.BaseRef},
	)
	if err != nil {
		return "", fmt.Errorf("failed to get file %q at %q: %w", path, pr.BaseRef, err)
	}
	if fileContent == nil {
		return "", fmt.Errorf("path %q is a directory, not a file", path)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode file content: %w", err)
	}

	return content, nil
}

// FindComment returns the latest comment on the pull request authored
// by the automation identity whose body starts with header.
func (p *GitHubProviderRepository) FindComment(
	ctx context.Context,
	pr entities.PullRequestContext,
	header string,
) (*entities.Comment, error) {
	var found *entities.Comment
	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	for {
		comments, resp, err := p.client.Issues.ListComments(
			ctx, pr.Owner, pr.Repo, pr.Number, opts,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to list comments on PR #%d: %w", pr.Number, err)
		}

		// Comments arrive oldest first, so the last match is the latest.
		for _, comment := range comments {
			if comment.GetUser().GetLogin() != botLogin {
				continue
			}
			if !strings.HasPrefix(comment.GetBody(), header) {
				continue
			}
			found = &entities.Comment{
				ID:     comment.GetID(),
				Author: comment.GetUser().GetLogin(),
				Body:   comment.GetBody(),
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return found, nil
}

func (p *GitHubProviderRepository) CreateComment(
	ctx context.Context,
	pr entities.PullRequestContext,
	body string,
) error {
	_, _, err := p.client.Issues.CreateComment(
		ctx, pr.Owner, pr.Repo, pr.Number,
		&gh.IssueComment{Body: &body},
	)
	if err != nil {
		return fmt.Errorf("failed to create comment on PR #%d: %w", pr.Number, err)
	}
	return nil
}

func (p *GitHubProviderRepository) UpdateComment(
	ctx context.Context,
	pr entities.PullRequestContext,
	id int64,
	body string,
) error {
	_, _, err := p.client.Issues.EditComment(
		ctx, pr.Owner, pr.Repo, id,
		&gh.IssueComment{Body: &body},
	)
	if err != nil {
		return fmt.Errorf("failed to update comment %d: %w", id, err)
	}
	return nil
}

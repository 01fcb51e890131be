package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// PullRequestContext identifies the pull request the report is
// published to and the branch the base lockfile is fetched from.
type PullRequestContext struct {
	Owner   string
	Repo    string
	Number  int
	BaseRef string
}

// Comment is a single issue/PR comment as seen through the provider.
type Comment struct {
	ID     int64
	Author string
	Body   string
}

// githubEvent mirrors the subset of the Actions event payload we need.
type githubEvent struct {
	PullRequest struct {
		Number int `json:"number"`
		Base   struct {
			Ref string `json:"ref"`
		} `json:"base"`
	} `json:"pull_request"`
}

// NewPullRequestContext builds the pull-request context from the
// GitHub Actions environment: GITHUB_REPOSITORY plus the event
// payload at GITHUB_EVENT_PATH, falling back to GITHUB_REF and
// GITHUB_BASE_REF when no payload is available.
func NewPullRequestContext() (*PullRequestContext, error) {
	repository := os.Getenv("GITHUB_REPOSITORY")
	owner, repo, found := strings.Cut(repository, "/")
	if !found || owner == "" || repo == "" {
		return nil, errors.New(
			"missing pull-request context: GITHUB_REPOSITORY is not set to \"owner/repo\"",
		)
	}

	ctx := &PullRequestContext{Owner: owner, Repo: repo}

	if eventPath := os.Getenv("GITHUB_EVENT_PATH"); eventPath != "" {
		if err := ctx.fromEventPayload(eventPath); err != nil {
			return nil, err
		}
	}

	if ctx.Number == 0 {
		number, err := numberFromRef(os.Getenv("GITHUB_REF"))
		if err != nil {
			return nil, err
		}
		ctx.Number = number
	}
	if ctx.BaseRef == "" {
		ctx.BaseRef = os.Getenv("GITHUB_BASE_REF")
	}
	if ctx.BaseRef == "" {
		return nil, errors.New("missing pull-request context: no base branch ref found")
	}

	return ctx, nil
}

func (it *PullRequestContext) fromEventPayload(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read event payload %q: %w", path, err)
	}

	var event githubEvent
	if unmarshalErr := json.Unmarshal(data, &event); unmarshalErr != nil {
		return fmt.Errorf("failed to parse event payload: %w", unmarshalErr)
	}

	it.Number = event.PullRequest.Number
	it.BaseRef = event.PullRequest.Base.Ref
	return nil
}

// numberFromRef extracts the PR number from a "refs/pull/<n>/merge" ref.
func numberFromRef(ref string) (int, error) {
	parts := strings.Split(ref, "/")
	if len(parts) >= 3 && parts[0] == "refs" && parts[1] == "pull" {
		if number, err := strconv.Atoi(parts[2]); err == nil {
			return number, nil
		}
	}
	return 0, errors.New(
		"missing pull-request context: run this from a pull_request workflow event",
	)
}

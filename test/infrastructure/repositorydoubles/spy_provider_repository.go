//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/Mheaus/package-lock-changes/internal/domain/entities"
	"github.com/Mheaus/package-lock-changes/internal/domain/repositories"
)

// SpyProviderRepository implements repositories.ProviderRepository as a configurable spy.
type SpyProviderRepository struct {
	// --- identity ---
	ProviderName string

	// --- GetBaseFileContent ---
	BaseFiles   map[string]string // path -> content
	BaseFileErr error
	// spy: paths that were fetched
	FetchedPaths []string

	// --- FindComment ---
	FoundComment *entities.Comment
	FindErr      error
	// spy: headers that were searched
	SearchedHeaders []string

	// --- CreateComment ---
	CreateErr error
	// spy: bodies received
	CreatedBodies []string

	// --- UpdateComment ---
	UpdateErr error
	// spy: updates received
	UpdatedIDs    []int64
	UpdatedBodies []string
}

var _ repositories.ProviderRepository = (*SpyProviderRepository)(nil)

func (p *SpyProviderRepository) Name() string {
	if p.ProviderName == "" {
		return "spy"
	}
	return p.ProviderName
}

func (p *SpyProviderRepository) GetBaseFileContent(
	_ context.Context, _ entities.PullRequestContext, path string,
) (string, error) {
	p.FetchedPaths = append(p.FetchedPaths, path)
	if p.BaseFiles != nil {
		if content, ok := p.BaseFiles[path]; ok {
			return content, nil
		}
	}
	if p.BaseFileErr != nil {
		return "", p.BaseFileErr
	}
	return "", fmt.Errorf("file not found: %s", path)
}

func (p *SpyProviderRepository) FindComment(
	_ context.Context, _ entities.PullRequestContext, header string,
) (*entities.Comment, error) {
	p.SearchedHeaders = append(p.SearchedHeaders, header)
	return p.FoundComment, p.FindErr
}

func (p *SpyProviderRepository) CreateComment(
	_ context.Context, _ entities.PullRequestContext, body string,
) error {
	p.CreatedBodies = append(p.CreatedBodies, body)
	return p.CreateErr
}

func (p *SpyProviderRepository) UpdateComment(
	_ context.Context, _ entities.PullRequestContext, id int64, body string,
) error {
	p.UpdatedIDs = append(p.UpdatedIDs, id)
	p.UpdatedBodies = append(p.UpdatedBodies, body)
	return p.UpdateErr
}

// StubLocalRepository implements repositories.LocalRepository with canned content.
type StubLocalRepository struct {
	Content string
	Err     error
	// spy: the base refs requested
	RequestedRefs []string
}

var _ repositories.LocalRepository = (*StubLocalRepository)(nil)

func (s *StubLocalRepository) BaseFileContent(_, baseRef, _ string) (string, error) {
	s.RequestedRefs = append(s.RequestedRefs, baseRef)
	return s.Content, s.Err
}

package gitlocal

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/Mheaus/package-lock-changes/internal/domain/repositories"
)

// defaultBaseRefs are tried in order when no base ref is given.
var defaultBaseRefs = []string{
	"origin/HEAD",
	"origin/main",
	"origin/master",
	"main",
	"master",
}

// GitLocalRepository implements repositories.LocalRepository by reading
// blobs straight out of a local clone, without touching the network.
type GitLocalRepository struct{}

// NewLocalRepository creates a new local Git reader.
func NewLocalRepository() repositories.LocalRepository {
	return &GitLocalRepository{}
}

// BaseFileContent returns the content of path at baseRef in the clone
// rooted at (or above) dir.
func (r *GitLocalRepository) BaseFileContent(dir, baseRef, path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open git repository at %q: %w", dir, err)
	}

	hash, err := resolveBase(repo, baseRef)
	if err != nil {
		return "", err
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("failed to read commit %s: %w", hash, err)
	}

	file, err := commit.File(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %q at base revision: %w", path, err)
	}

	content, err := file.Contents()
	if err != nil {
		return "", fmt.Errorf("failed to read blob for %q: %w", path, err)
	}

	return content, nil
}

func resolveBase(repo *git.Repository, baseRef string) (*plumbing.Hash, error) {
	if baseRef != "" {
		hash, err := repo.ResolveRevision(plumbing.Revision(baseRef))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve base revision %q: %w", baseRef, err)
		}
		return hash, nil
	}

	for _, candidate := range defaultBaseRefs {
		if hash, err := repo.ResolveRevision(plumbing.Revision(candidate)); err == nil {
			return hash, nil
		}
	}
	return nil, fmt.Errorf("failed to resolve a base branch (tried %v); pass --base", defaultBaseRefs)
}

package repositories

// LocalRepository abstracts reading a lockfile from a base revision of
// a local Git clone, so the local mode works without any network access.
type LocalRepository interface {
	// BaseFileContent returns the content of path at baseRef in the
	// repository rooted at (or above) dir. An empty baseRef lets the
	// implementation pick a sensible default branch.
	BaseFileContent(dir, baseRef, path string) (string, error)
}

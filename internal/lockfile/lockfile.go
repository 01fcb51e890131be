// Package lockfile turns raw lockfile content into a flat
// name -> resolved-version map, behind a per-format parser registry.
package lockfile

import (
	"fmt"
	"path/filepath"
)

// Parser extracts the pinned package versions from one lockfile format.
type Parser interface {
	// Name returns the parser identifier (e.g. "npm").
	Name() string

	// Parse returns the name -> version map for the given content.
	Parse(content []byte) (map[string]string, error)
}

// Registry maps lockfile base names to their parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser for the given lockfile base name.
func (r *Registry) Register(baseName string, parser Parser) {
	r.parsers[baseName] = parser
}

// ForPath returns the parser responsible for the given lockfile path,
// matched on its base name.
func (r *Registry) ForPath(path string) (Parser, error) {
	parser, ok := r.parsers[filepath.Base(path)]
	if !ok {
		return nil, fmt.Errorf("unsupported lockfile %q", path)
	}
	return parser, nil
}

// DefaultRegistry returns a registry with every built-in parser.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Register("package-lock.json", NewNpmParser())
	reg.Register("yarn.lock", NewYarnParser())
	reg.Register(".terraform.lock.hcl", NewTerraformParser())
	reg.Register("go.mod", NewGoModParser())
	return reg
}

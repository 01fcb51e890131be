package lockfile

import (
	"fmt"

	"golang.org/x/mod/modfile"
)

// GoModParser parses go.mod files, mapping each required module path
// to its pinned version. Direct and indirect requirements are both
// included since go.mod pins exact versions for the whole graph.
type GoModParser struct{}

// NewGoModParser creates a new go.mod parser.
func NewGoModParser() *GoModParser {
	return &GoModParser{}
}

func (p *GoModParser) Name() string { return "gomod" }

func (p *GoModParser) Parse(content []byte) (map[string]string, error) {
	file, err := modfile.Parse("go.mod", content, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse go.mod: %w", err)
	}

	versions := make(map[string]string, len(file.Require))
	for _, require := range file.Require {
		versions[require.Mod.Path] = require.Mod.Version
	}

	return versions, nil
}

package lockfile

import (
	"encoding/json"
	"fmt"
	"strings"
)

const nodeModulesPrefix = "node_modules/"

// NpmParser parses package-lock.json files, covering both the legacy
// v1 "dependencies" tree and the v2/v3 "packages" map.
type NpmParser struct{}

// NewNpmParser creates a new npm lockfile parser.
func NewNpmParser() *NpmParser {
	return &NpmParser{}
}

func (p *NpmParser) Name() string { return "npm" }

type npmLock struct {
	LockfileVersion int                      `json:"lockfileVersion"`
	Packages        map[string]npmPackage    `json:"packages"`
	Dependencies    map[string]npmDependency `json:"dependencies"`
}

type npmPackage struct {
	Version string `json:"version"`
}

type npmDependency struct {
	Version      string                   `json:"version"`
	Dependencies map[string]npmDependency `json:"dependencies"`
}

// Parse extracts the resolved versions. When a package appears both at
// the top level and nested under another dependency, the shallower
// entry wins.
func (p *NpmParser) Parse(content []byte) (map[string]string, error) {
	var lock npmLock
	if err := json.Unmarshal(content, &lock); err != nil {
		return nil, fmt.Errorf("failed to parse package-lock.json: %w", err)
	}

	if len(lock.Packages) > 0 {
		return parsePackagesMap(lock.Packages), nil
	}
	return parseDependencyTree(lock.Dependencies), nil
}

func parsePackagesMap(packages map[string]npmPackage) map[string]string {
	versions := make(map[string]string, len(packages))
	depths := make(map[string]int, len(packages))

	for key, pkg := range packages {
		if key == "" || pkg.Version == "" {
			continue // root project entry
		}

		depth := strings.Count(key, nodeModulesPrefix)
		idx := strings.LastIndex(key, nodeModulesPrefix)
		if idx < 0 {
			continue // workspace link, not an installed package
		}
		name := key[idx+len(nodeModulesPrefix):]

		if seen, ok := depths[name]; ok && seen <= depth {
			continue
		}
		versions[name] = pkg.Version
		depths[name] = depth
	}

	return versions
}

func parseDependencyTree(deps map[string]npmDependency) map[string]string {
	versions := make(map[string]string, len(deps))
	collectDependencies(deps, versions)
	return versions
}

func collectDependencies(deps map[string]npmDependency, versions map[string]string) {
	for name, dep := range deps {
		// Top-level entries are walked first, so never overwrite.
		if _, ok := versions[name]; !ok && dep.Version != "" {
			versions[name] = dep.Version
		}
	}
	for _, dep := range deps {
		if len(dep.Dependencies) > 0 {
			collectDependencies(dep.Dependencies, versions)
		}
	}
}

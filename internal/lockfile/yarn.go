package lockfile

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YarnParser parses yarn.lock files, covering the classic v1 line
// format and the YAML format written by yarn berry (v2+).
type YarnParser struct{}

// NewYarnParser creates a new yarn lockfile parser.
func NewYarnParser() *YarnParser {
	return &YarnParser{}
}

func (p *YarnParser) Name() string { return "yarn" }

func (p *YarnParser) Parse(content []byte) (map[string]string, error) {
	if bytes.Contains(content, []byte("__metadata:")) {
		return parseBerry(content)
	}
	return parseClassic(content)
}

// parseBerry decodes the berry YAML document. Top-level keys are
// comma-separated descriptor lists like "lodash@npm:^4.17.0". The
// entries decode loosely because the __metadata block carries an
// integer version.
func parseBerry(content []byte) (map[string]string, error) {
	var doc map[string]map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yarn.lock: %w", err)
	}

	versions := make(map[string]string, len(doc))
	for key, entry := range doc {
		if key == "__metadata" {
			continue
		}
		version, ok := entry["version"].(string)
		if !ok || version == "" {
			continue
		}
		descriptor := strings.SplitN(key, ",", 2)[0]
		name := nameFromDescriptor(strings.TrimSpace(descriptor))
		if name == "" {
			continue
		}
		versions[name] = version
	}

	return versions, nil
}

// parseClassic scans the v1 line format: an unindented key group line
// ending with ":" followed by an indented `version "x.y.z"` line.
func parseClassic(content []byte) (map[string]string, error) {
	versions := make(map[string]string)
	var pendingNames []string

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case !strings.HasPrefix(line, " "):
			if !strings.HasSuffix(line, ":") {
				continue
			}
			pendingNames = pendingNames[:0]
			for _, descriptor := range strings.Split(strings.TrimSuffix(line, ":"), ",") {
				name := nameFromDescriptor(strings.Trim(strings.TrimSpace(descriptor), `"`))
				if name != "" {
					pendingNames = append(pendingNames, name)
				}
			}
		default:
			trimmed := strings.TrimSpace(line)
			if !strings.HasPrefix(trimmed, "version ") && !strings.HasPrefix(trimmed, "version:") {
				continue
			}
			version := strings.Trim(strings.TrimPrefix(strings.TrimPrefix(trimmed, "version:"), "version"), ` "`)
			for _, name := range pendingNames {
				versions[name] = version
			}
			pendingNames = pendingNames[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan yarn.lock: %w", err)
	}

	return versions, nil
}

// nameFromDescriptor extracts the package name from a lockfile key of
// the form "name@range" or "@scope/name@range". Scoped names are
// reconstructed by re-prefixing the "@" stripped before the split.
func nameFromDescriptor(descriptor string) string {
	scoped := strings.HasPrefix(descriptor, "@")
	if scoped {
		descriptor = descriptor[1:]
	}

	name, _, found := strings.Cut(descriptor, "@")
	if !found || name == "" {
		return ""
	}
	if scoped {
		return "@" + name
	}
	return name
}

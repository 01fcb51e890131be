package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is the lockfile diffed when no path input is given.
	DefaultPath = "package-lock.json"

	// DefaultCollapsibleThreshold is the change count at which the
	// report table is collapsed behind a summary.
	DefaultCollapsibleThreshold = 25
)

// Config is the resolved runtime configuration.
type Config struct {
	Path                 string
	CollapsibleThreshold int
	Token                string
	UpdateComment        bool
}

// fileConfig mirrors the optional YAML config file. Boolean and integer
// fields stay strings so the same strict parsing applies to every source.
type fileConfig struct {
	Path                 string `yaml:"path"`
	CollapsibleThreshold string `yaml:"collapsibleThreshold"`
	Token                string `yaml:"token"`
	UpdateComment        string `yaml:"updateComment"`
}

// Overrides carries CLI flag values that win over every other source.
// Zero values leave the resolved setting untouched.
type Overrides struct {
	Path                 string
	Token                string
	CollapsibleThreshold *int
	UpdateComment        string
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load resolves the configuration: defaults, then the optional YAML
// config file, then the INPUT_* environment variables set by the
// Actions runner, then the CLI overrides. The token value supports
// inline secrets, ${ENV_VAR} references, and token file paths.
func Load(configPath string, overrides Overrides) (*Config, error) {
	cfg := &Config{
		Path:                 DefaultPath,
		CollapsibleThreshold: DefaultCollapsibleThreshold,
		UpdateComment:        true,
	}

	path := configPath
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := applyEnvironment(cfg); err != nil {
		return nil, err
	}

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, err
	}

	cfg.Token = ResolveToken(cfg.Token)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseBool parses the boolean spellings accepted by the action inputs:
// true/yes/y/on and false/no/n/off, case-insensitive. Any other value
// is a configuration error.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "y", "on":
		return true, nil
	case "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf(
			"invalid boolean value %q (expected true/yes/y/on or false/no/n/off)", raw,
		)
	}
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var fc fileConfig
	if unmarshalErr := yaml.Unmarshal(data, &fc); unmarshalErr != nil {
		return fmt.Errorf("failed to parse config file %q: %w", path, unmarshalErr)
	}

	logger.Debugf("Loaded config file %q", path)

	if fc.Path != "" {
		cfg.Path = fc.Path
	}
	if fc.Token != "" {
		cfg.Token = fc.Token
	}
	if fc.CollapsibleThreshold != "" {
		threshold, parseErr := strconv.Atoi(fc.CollapsibleThreshold)
		if parseErr != nil {
			return fmt.Errorf("invalid collapsibleThreshold in %q: %w", path, parseErr)
		}
		cfg.CollapsibleThreshold = threshold
	}
	if fc.UpdateComment != "" {
		update, parseErr := ParseBool(fc.UpdateComment)
		if parseErr != nil {
			return fmt.Errorf("invalid updateComment in %q: %w", path, parseErr)
		}
		cfg.UpdateComment = update
	}

	return nil
}

func applyEnvironment(cfg *Config) error {
	if path := actionInput("path"); path != "" {
		cfg.Path = path
	}
	if token := actionInput("token"); token != "" {
		cfg.Token = token
	} else if cfg.Token == "" {
		cfg.Token = os.Getenv("GITHUB_TOKEN")
	}
	if raw := actionInput("collapsibleThreshold"); raw != "" {
		threshold, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid collapsibleThreshold input: %w", err)
		}
		cfg.CollapsibleThreshold = threshold
	}
	if raw := actionInput("updateComment"); raw != "" {
		update, err := ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid updateComment input: %w", err)
		}
		cfg.UpdateComment = update
	}
	return nil
}

func applyOverrides(cfg *Config, overrides Overrides) error {
	if overrides.Path != "" {
		cfg.Path = overrides.Path
	}
	if overrides.Token != "" {
		cfg.Token = overrides.Token
	}
	if overrides.CollapsibleThreshold != nil {
		cfg.CollapsibleThreshold = *overrides.CollapsibleThreshold
	}
	if overrides.UpdateComment != "" {
		update, err := ParseBool(overrides.UpdateComment)
		if err != nil {
			return fmt.Errorf("invalid --update-comment flag: %w", err)
		}
		cfg.UpdateComment = update
	}
	return nil
}

// actionInput reads an input the way the Actions runner exposes it:
// INPUT_<NAME>, upper-cased, spaces replaced with underscores.
func actionInput(name string) string {
	key := "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	return strings.TrimSpace(os.Getenv(key))
}

// findConfigFile searches the standard locations for a config file and
// returns the first one found, or "" when there is none.
func findConfigFile() string {
	locations := []string{".", ".config", ".github"}
	patterns := []string{
		".lockchanges.yaml",
		".lockchanges.yml",
		"lockchanges.yaml",
		"lockchanges.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p
			}
		}
	}
	return ""
}

// ResolveToken expands environment variable references (${VAR}) and, if
// the resulting string is a path to an existing file, reads the token
// from the file.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if cfg.Token == "" {
		return errors.New("token is required (set the token input or GITHUB_TOKEN)")
	}
	if cfg.CollapsibleThreshold < 0 {
		return fmt.Errorf("collapsibleThreshold must be >= 0, got %d", cfg.CollapsibleThreshold)
	}
	if cfg.Path == "" {
		return errors.New("path must not be empty")
	}
	return nil
}

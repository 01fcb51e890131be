//go:build unit

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mheaus/package-lock-changes/config"
)

func TestParseBool(t *testing.T) {
	t.Parallel()

	t.Run("should accept every true spelling", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"true", "TRUE", "yes", "Yes", "y", "on", "On"} {
			// given / when
			value, err := config.ParseBool(raw)

			// then
			require.NoError(t, err, raw)
			assert.True(t, value, raw)
		}
	})

	t.Run("should accept every false spelling", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"false", "FALSE", "no", "No", "n", "off", "Off"} {
			// given / when
			value, err := config.ParseBool(raw)

			// then
			require.NoError(t, err, raw)
			assert.False(t, value, raw)
		}
	})

	t.Run("should reject any other spelling", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "1", "0", "enabled", "ja"} {
			// given / when
			_, err := config.ParseBool(raw)

			// then
			require.Error(t, err, raw)
		}
	})
}

//nolint:tparallel // subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		// given
		t.Setenv("INPUT_TOKEN", "ghp_abc")

		// when
		cfg, err := config.Load(os.DevNull, config.Overrides{})

		// then
		require.NoError(t, err)
		assert.Equal(t, config.DefaultPath, cfg.Path)
		assert.Equal(t, config.DefaultCollapsibleThreshold, cfg.CollapsibleThreshold)
		assert.True(t, cfg.UpdateComment)
	})

	t.Run("should fail without a token", func(t *testing.T) {
		// given
		t.Setenv("INPUT_TOKEN", "")
		t.Setenv("GITHUB_TOKEN", "")

		// when
		_, err := config.Load(os.DevNull, config.Overrides{})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token is required")
	})

	t.Run("should read action inputs from the environment", func(t *testing.T) {
		// given
		t.Setenv("INPUT_TOKEN", "ghp_abc")
		t.Setenv("INPUT_PATH", "frontend/yarn.lock")
		t.Setenv("INPUT_COLLAPSIBLETHRESHOLD", "10")
		t.Setenv("INPUT_UPDATECOMMENT", "no")

		// when
		cfg, err := config.Load(os.DevNull, config.Overrides{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "frontend/yarn.lock", cfg.Path)
		assert.Equal(t, 10, cfg.CollapsibleThreshold)
		assert.False(t, cfg.UpdateComment)
	})

	t.Run("should fail on an unparseable boolean input", func(t *testing.T) {
		// given
		t.Setenv("INPUT_TOKEN", "ghp_abc")
		t.Setenv("INPUT_UPDATECOMMENT", "maybe")

		// when
		_, err := config.Load(os.DevNull, config.Overrides{})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid updateComment")
	})

	t.Run("should fail on a negative threshold", func(t *testing.T) {
		// given
		t.Setenv("INPUT_TOKEN", "ghp_abc")
		t.Setenv("INPUT_COLLAPSIBLETHRESHOLD", "-1")

		// when
		_, err := config.Load(os.DevNull, config.Overrides{})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "collapsibleThreshold must be >= 0")
	})

	t.Run("should read settings from a YAML config file", func(t *testing.T) {
		// given
		t.Setenv("INPUT_TOKEN", "ghp_abc")
		path := filepath.Join(t.TempDir(), ".lockchanges.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"path: yarn.lock\ncollapsibleThreshold: \"5\"\nupdateComment: \"off\"\n",
		), 0o600))

		// when
		cfg, err := config.Load(path, config.Overrides{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "yarn.lock", cfg.Path)
		assert.Equal(t, 5, cfg.CollapsibleThreshold)
		assert.False(t, cfg.UpdateComment)
	})

	t.Run("should let overrides win over env inputs", func(t *testing.T) {
		// given
		t.Setenv("INPUT_TOKEN", "ghp_abc")
		t.Setenv("INPUT_PATH", "yarn.lock")
		threshold := 3

		// when
		cfg, err := config.Load(os.DevNull, config.Overrides{
			Path:                 "go.mod",
			CollapsibleThreshold: &threshold,
			UpdateComment:        "off",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "go.mod", cfg.Path)
		assert.Equal(t, 3, cfg.CollapsibleThreshold)
		assert.False(t, cfg.UpdateComment)
	})
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestResolveToken(t *testing.T) {
	t.Run("should return inline token unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "ghp_abc123xyz"

		// when
		result := config.ResolveToken(raw)

		// then
		assert.Equal(t, "ghp_abc123xyz", result)
	})

	t.Run("should expand environment variable reference", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_TOKEN_RESOLVE", "my-secret-token")
		raw := "${TEST_TOKEN_RESOLVE}"

		// when
		result := config.ResolveToken(raw)

		// then
		assert.Equal(t, "my-secret-token", result)
	})

	t.Run("should read token from file when path exists", func(t *testing.T) {
		t.Parallel()

		// given
		tokenFile := filepath.Join(t.TempDir(), "token.key")
		require.NoError(t, os.WriteFile(tokenFile, []byte("  file-based-token  \n"), 0o600))

		// when
		result := config.ResolveToken(tokenFile)

		// then
		assert.Equal(t, "file-based-token", result)
	})
}

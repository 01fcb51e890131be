//go:build unit

package lockfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mheaus/package-lock-changes/internal/lockfile"
)

func TestGoModParserParse(t *testing.T) {
	t.Parallel()

	t.Run("should map module paths to pinned versions", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte(`module example.com/demo

go 1.22

require (
	github.com/spf13/cobra v1.8.0
	github.com/stretchr/testify v1.9.0 // indirect
)
`)

		// when
		versions, err := lockfile.NewGoModParser().Parse(content)

		// then
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"github.com/spf13/cobra":      "v1.8.0",
			"github.com/stretchr/testify": "v1.9.0",
		}, versions)
	})

	t.Run("should reject malformed files", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte(`require github.com/broken`)

		// when
		_, err := lockfile.NewGoModParser().Parse(content)

		// then
		require.Error(t, err)
	})
}

func TestRegistryForPath(t *testing.T) {
	t.Parallel()

	t.Run("should pick the parser by base name", func(t *testing.T) {
		t.Parallel()

		// given
		reg := lockfile.DefaultRegistry()

		// when
		parser, err := reg.ForPath("frontend/yarn.lock")

		// then
		require.NoError(t, err)
		assert.Equal(t, "yarn", parser.Name())
	})

	t.Run("should reject unsupported lockfiles", func(t *testing.T) {
		t.Parallel()

		// given
		reg := lockfile.DefaultRegistry()

		// when
		_, err := reg.ForPath("Cargo.lock")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported lockfile")
	})
}

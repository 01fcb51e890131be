//go:build unit

package lockfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mheaus/package-lock-changes/internal/lockfile"
)

func TestYarnParserParse(t *testing.T) {
	t.Parallel()

	t.Run("should parse the classic v1 format", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte(`# THIS IS AN AUTOGENERATED FILE. DO NOT EDIT THIS FILE DIRECTLY.
# yarn lockfile v1

lodash@^4.17.20, lodash@^4.17.21:
  version "4.17.21"
  resolved "https://registry.yarnpkg.com/lodash/-/lodash-4.17.21.tgz"

"@babel/code-frame@^7.0.0":
  version "7.23.5"
`)

		// when
		versions, err := lockfile.NewYarnParser().Parse(content)

		// then
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"lodash":            "4.17.21",
			"@babel/code-frame": "7.23.5",
		}, versions)
	})

	t.Run("should reconstruct scoped names from the raw key", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte(`"@scope/name@^1.0.0":
  version "1.2.3"
`)

		// when
		versions, err := lockfile.NewYarnParser().Parse(content)

		// then
		require.NoError(t, err)
		assert.Equal(t, "1.2.3", versions["@scope/name"])
	})

	t.Run("should parse the berry YAML format", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte(`__metadata:
  version: 8
  cacheKey: 10c0

"lodash@npm:^4.17.21":
  version: 4.17.21
  languageName: node

"@types/node@npm:^20.0.0, @types/node@npm:*":
  version: 20.11.5
  languageName: node
`)

		// when
		versions, err := lockfile.NewYarnParser().Parse(content)

		// then
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"lodash":      "4.17.21",
			"@types/node": "20.11.5",
		}, versions)
	})
}

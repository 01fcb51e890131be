//go:build unit

package lockfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mheaus/package-lock-changes/internal/lockfile"
)

func TestTerraformParserParse(t *testing.T) {
	t.Parallel()

	t.Run("should map provider sources to pinned versions", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte(`# This file is maintained automatically by "terraform init".

provider "registry.terraform.io/hashicorp/aws" {
  version     = "5.31.0"
  constraints = "~> 5.0"
  hashes = [
    "h1:abc123=",
  ]
}

provider "registry.terraform.io/hashicorp/random" {
  version = "3.6.0"
}
`)

		// when
		versions, err := lockfile.NewTerraformParser().Parse(content)

		// then
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"registry.terraform.io/hashicorp/aws":    "5.31.0",
			"registry.terraform.io/hashicorp/random": "3.6.0",
		}, versions)
	})

	t.Run("should reject malformed HCL", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte(`provider "x" {`)

		// when
		_, err := lockfile.NewTerraformParser().Parse(content)

		// then
		require.Error(t, err)
	})
}

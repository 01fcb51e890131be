//go:build unit

package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mheaus/package-lock-changes/internal/domain/entities"
	builders "github.com/Mheaus/package-lock-changes/test/domain/entitybuilders"
)

func TestRenderReport(t *testing.T) {
	t.Parallel()

	t.Run("should start with the marker header for the path", func(t *testing.T) {
		t.Parallel()

		// given
		changes := builders.NewChangeSetBuilder().WithAdded("react", "18.2.0").BuildChangeSet()

		// when
		body := entities.RenderReport("package-lock.json", changes, 25)

		// then
		assert.True(t, strings.HasPrefix(body, entities.MarkerHeader("package-lock.json")))
	})

	t.Run("should sort rows by package name ascending", func(t *testing.T) {
		t.Parallel()

		// given
		changes := builders.NewChangeSetBuilder().
			WithUpdated("zod", "3.0.0", "3.1.0").
			WithAdded("axios", "1.6.0").
			WithRemoved("moment", "2.29.0").
			BuildChangeSet()

		// when
		body := entities.RenderReport("package-lock.json", changes, 25)

		// then
		axios := strings.Index(body, "`axios`")
		moment := strings.Index(body, "`moment`")
		zod := strings.Index(body, "`zod`")
		require.Positive(t, axios)
		assert.Less(t, axios, moment)
		assert.Less(t, moment, zod)
	})

	t.Run("should render placeholders for the missing side", func(t *testing.T) {
		t.Parallel()

		// given
		changes := builders.NewChangeSetBuilder().WithAdded("axios", "1.6.0").BuildChangeSet()

		// when
		body := entities.RenderReport("package-lock.json", changes, 25)

		// then
		assert.Contains(t, body, "| `axios` | 🆕 added | - | 1.6.0 |")
	})

	t.Run("should collapse and summarize at the threshold", func(t *testing.T) {
		t.Parallel()

		// given 30 changes against a threshold of 25
		changes := builders.NewChangeSetBuilder().WithUpdatedCount(30).BuildChangeSet()

		// when
		body := entities.RenderReport("package-lock.json", changes, 25)

		// then
		assert.Contains(t, body, "| Status | Count |")
		assert.Contains(t, body, "| ⬆️ updated | 30 |")
		assert.Contains(t, body, "<details>\n")
		assert.NotContains(t, body, "<details open>")
	})

	t.Run("should expand without summary below the threshold", func(t *testing.T) {
		t.Parallel()

		// given 10 changes against a threshold of 25
		changes := builders.NewChangeSetBuilder().WithUpdatedCount(10).BuildChangeSet()

		// when
		body := entities.RenderReport("package-lock.json", changes, 25)

		// then
		assert.Contains(t, body, "<details open>")
		assert.NotContains(t, body, "| Status | Count |")
	})

	t.Run("should emit only non-zero summary rows in fixed order", func(t *testing.T) {
		t.Parallel()

		// given a set over the threshold with no downgrades
		changes := builders.NewChangeSetBuilder().
			WithUpdatedCount(3).
			WithAdded("a-new", "1.0.0").
			WithRemoved("b-old", "2.0.0").
			BuildChangeSet()

		// when
		body := entities.RenderReport("package-lock.json", changes, 5)

		// then
		assert.NotContains(t, body, "⬇️ downgraded |")
		added := strings.Index(body, "| 🆕 added | 1 |")
		updated := strings.Index(body, "| ⬆️ updated | 3 |")
		removed := strings.Index(body, "| ❌ removed | 1 |")
		require.Positive(t, added)
		assert.Less(t, added, updated)
		assert.Less(t, updated, removed)
	})
}

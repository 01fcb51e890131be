//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/Mheaus/package-lock-changes/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ChangeSetBuilder helps create test change sets with a fluent interface.
type ChangeSetBuilder struct {
	*testkit.BaseBuilder
	changes entities.ChangeSet
}

// NewChangeSetBuilder creates a new change set builder.
func NewChangeSetBuilder() *ChangeSetBuilder {
	return &ChangeSetBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		changes:     make(entities.ChangeSet),
	}
}

// WithAdded adds an added-package record.
func (b *ChangeSetBuilder) WithAdded(name, version string) *ChangeSetBuilder {
	b.changes[name] = entities.ChangeRecord{
		Previous: entities.NoVersion,
		Current:  version,
		Status:   entities.StatusAdded,
	}
	return b
}

// WithRemoved adds a removed-package record.
func (b *ChangeSetBuilder) WithRemoved(name, version string) *ChangeSetBuilder {
	b.changes[name] = entities.ChangeRecord{
		Previous: version,
		Current:  entities.NoVersion,
		Status:   entities.StatusRemoved,
	}
	return b
}

// WithUpdated adds an updated-package record.
func (b *ChangeSetBuilder) WithUpdated(name, previous, current string) *ChangeSetBuilder {
	b.changes[name] = entities.ChangeRecord{
		Previous: previous,
		Current:  current,
		Status:   entities.StatusUpdated,
	}
	return b
}

// WithDowngraded adds a downgraded-package record.
func (b *ChangeSetBuilder) WithDowngraded(name, previous, current string) *ChangeSetBuilder {
	b.changes[name] = entities.ChangeRecord{
		Previous: previous,
		Current:  current,
		Status:   entities.StatusDowngraded,
	}
	return b
}

// WithUpdatedCount adds n generated updated-package records.
func (b *ChangeSetBuilder) WithUpdatedCount(n int) *ChangeSetBuilder {
	for i := 0; i < n; i++ {
		b.WithUpdated(fmt.Sprintf("package-%03d", i), "1.0.0", "1.1.0")
	}
	return b
}

// Build creates the change set (satisfies testkit.Builder interface).
func (b *ChangeSetBuilder) Build() interface{} {
	return b.BuildChangeSet()
}

// BuildChangeSet creates the change set with a concrete return type.
func (b *ChangeSetBuilder) BuildChangeSet() entities.ChangeSet {
	built := make(entities.ChangeSet, len(b.changes))
	for name, record := range b.changes {
		built[name] = record
	}
	return built
}

// Reset clears the builder state, allowing it to be reused.
func (b *ChangeSetBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.changes = make(entities.ChangeSet)
	return b
}

// Clone creates a deep copy of the ChangeSetBuilder.
func (b *ChangeSetBuilder) Clone() testkit.Builder {
	return &ChangeSetBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		changes:     b.BuildChangeSet(),
	}
}

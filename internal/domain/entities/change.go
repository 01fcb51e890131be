package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// ChangeStatus classifies what happened to a single package between
// two lockfile snapshots.
type ChangeStatus string

const (
	StatusAdded      ChangeStatus = "added"
	StatusRemoved    ChangeStatus = "removed"
	StatusUpdated    ChangeStatus = "updated"
	StatusDowngraded ChangeStatus = "downgraded"
)

// NoVersion is the placeholder rendered for the missing side of an
// added or removed package.
const NoVersion = "-"

// ChangeRecord holds the previous/current version pair and the
// classification for one package name.
type ChangeRecord struct {
	Previous string
	Current  string
	Status   ChangeStatus
}

// ChangeSet maps package names to their change records. Packages whose
// version is identical in both snapshots never appear in the set.
type ChangeSet map[string]ChangeRecord

// Diff compares two name->version snapshots and classifies every
// package into added, removed, updated or downgraded.
func Diff(previous, current map[string]string) ChangeSet {
	changes := make(ChangeSet)

	for name, version := range previous {
		changes[name] = ChangeRecord{
			Previous: version,
			Current:  NoVersion,
			Status:   StatusRemoved,
		}
	}

	for name, version := range current {
		record, seen := changes[name]
		if !seen {
			changes[name] = ChangeRecord{
				Previous: NoVersion,
				Current:  version,
				Status:   StatusAdded,
			}
			continue
		}

		if record.Previous == version {
			delete(changes, name)
			continue
		}

		record.Current = version
		if CompareVersions(record.Previous, version) > 0 {
			record.Status = StatusDowngraded
		} else {
			record.Status = StatusUpdated
		}
		changes[name] = record
	}

	return changes
}

// CompareVersions orders two version strings semantically, returning
// -1, 0 or +1. Versions missing the leading "v" are normalized before
// the comparison; strings that are not valid semver fall back to a
// lexical ordering.
func CompareVersions(a, b string) int {
	v1 := normalizeVersion(a)
	v2 := normalizeVersion(b)
	if semver.IsValid(v1) && semver.IsValid(v2) {
		return semver.Compare(v1, v2)
	}
	return strings.Compare(a, b)
}

func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

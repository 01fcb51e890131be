package entities

import (
	"fmt"
	"sort"
	"strings"
)

const markerFmt = "<!-- package-lock-changes:%s -->"

// statusBadges maps each status to the badge rendered in the tables.
var statusBadges = map[ChangeStatus]string{
	StatusAdded:      "🆕 added",
	StatusRemoved:    "❌ removed",
	StatusUpdated:    "⬆️ updated",
	StatusDowngraded: "⬇️ downgraded",
}

// summaryOrder is the fixed row order of the summary table.
var summaryOrder = []ChangeStatus{
	StatusAdded,
	StatusUpdated,
	StatusDowngraded,
	StatusRemoved,
}

// MarkerHeader returns the hidden header line that identifies a
// previously published comment for the given lockfile path.
func MarkerHeader(path string) string {
	return fmt.Sprintf(markerFmt, path)
}

// RenderReport renders the full comment body for a change set: the
// marker header, a title, and the change table. When the number of
// changed packages reaches collapsibleThreshold the table is wrapped
// in a collapsed block preceded by a per-status summary table;
// below the threshold the block is expanded and no summary is shown.
func RenderReport(path string, changes ChangeSet, collapsibleThreshold int) string {
	var sb strings.Builder

	sb.WriteString(MarkerHeader(path))
	sb.WriteString("\n## 🔒 Changes to `")
	sb.WriteString(path)
	sb.WriteString("`\n\n")

	collapsed := len(changes) >= collapsibleThreshold
	if collapsed {
		writeSummaryTable(&sb, changes)
		sb.WriteString("<details>\n")
	} else {
		sb.WriteString("<details open>\n")
	}

	fmt.Fprintf(&sb, "<summary>%d changed package(s)</summary>\n\n", len(changes))
	writeChangeTable(&sb, changes)
	sb.WriteString("\n</details>\n")

	return sb.String()
}

func writeSummaryTable(sb *strings.Builder, changes ChangeSet) {
	counts := make(map[ChangeStatus]int)
	for _, record := range changes {
		counts[record.Status]++
	}

	sb.WriteString("| Status | Count |\n")
	sb.WriteString("| :- | -: |\n")
	for _, status := range summaryOrder {
		if counts[status] == 0 {
			continue
		}
		fmt.Fprintf(sb, "| %s | %d |\n", statusBadges[status], counts[status])
	}
	sb.WriteString("\n")
}

func writeChangeTable(sb *strings.Builder, changes ChangeSet) {
	names := make([]string, 0, len(changes))
	for name := range changes {
		names = append(names, name)
	}
	sort.Strings(names)

	sb.WriteString("| Name | Status | Previous | Current |\n")
	sb.WriteString("| :- | :-: | -: | -: |\n")
	for _, name := range names {
		record := changes[name]
		fmt.Fprintf(sb, "| `%s` | %s | %s | %s |\n",
			name, statusBadges[record.Status], record.Previous, record.Current)
	}
}

package app

import (
	"fmt"
	"strings"
)

const (
	maxTracedQueryLength = 512
	upsertSetClause      = " DO UPDATE SET "
)

// formatDBQueryForTrace flattens a query onto one line for the db.statement
// attribute. The stat-line upsert repeats one assignment per counter column,
// so its SET list is reduced to a count.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if idx := strings.Index(normalized, upsertSetClause); idx >= 0 {
		normalized = normalized[:idx] + summarizeUpsertSet(normalized[idx+len(upsertSetClause):])
	}
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}

func summarizeUpsertSet(assignments string) string {
	var returning string
	if idx := strings.Index(assignments, " RETURNING "); idx >= 0 {
		assignments, returning = assignments[:idx], assignments[idx:]
	}
	return fmt.Sprintf("%s[%d columns]%s", upsertSetClause, strings.Count(assignments, ",")+1, returning)
}

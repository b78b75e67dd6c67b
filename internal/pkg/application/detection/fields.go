package detection

import (
	"strings"

	"github.com/samber/lo"
)

// ResolveField maps a semantic role to the column that carries it in a
// concrete schema. Candidates are tried strictly in order: an exact match
// wins over a case-insensitive one, and an earlier candidate wins over a
// later one. Returns false when no candidate is present.
func ResolveField(schema []string, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if lo.Contains(schema, candidate) {
			return candidate, true
		}

		match, ok := lo.Find(schema, func(field string) bool {
			return strings.EqualFold(field, candidate)
		})
		if ok {
			return match, true
		}
	}

	return "", false
}

// resolvePresent checks for an explicitly named field (case-insensitively)
// without consulting any alias table.
func resolvePresent(schema []string, field string) (string, bool) {
	return ResolveField(schema, []string{field})
}

package query

import (
	"strings"
	"unicode/utf8"

	"github.com/medebd/medicine-api/catalogparser/entities"
)

// CollapseWhitespace trims s and collapses every run of whitespace into a
// single space. Idempotent.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeGeneric cleans the string fields of a generic record before it is
// attached to a response row. The indication list passes through unchanged.
func NormalizeGeneric(g entities.Generic) entities.Generic {
	g.GenericName = CollapseWhitespace(g.GenericName)
	g.GenericNameBangla = CollapseWhitespace(g.GenericNameBangla)
	return g
}

// SummarizeGeneric builds the generics-list projection of g. A Bangla name
// whose trimmed form is shorter than 2 runes is treated as a placeholder and
// emitted as null.
func SummarizeGeneric(g entities.Generic) entities.GenericSummary {
	summary := entities.GenericSummary{
		GenericID:   g.GenericID,
		GenericName: g.GenericName,
	}

	bangla := strings.TrimSpace(g.GenericNameBangla)
	if utf8.RuneCountInString(bangla) >= 2 {
		summary.GenericNameBangla = &bangla
	}

	return summary
}

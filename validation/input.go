// Package validation provides defensive checks for untrusted query input.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const maxSearchTermLength = 100

// Injection probes seen against the public API; a search term is plain text
// and has no business containing any of these.
var dangerousPatterns = []string{
	"<script", "javascript:", "onerror=", "onload=",
	"union select", "drop table", "delete from", "insert into",
	"../", "..\\", "file://",
	"{$ne:", "{$gt:", "{$where:", "{$regex:",
	"$(", "${", "`",
}

// ValidateSearchTerm checks a free-text search parameter (brand name or
// symptom). The catalog carries Bengali script, so no character allow-list
// is applied; control characters and injection patterns are rejected.
func ValidateSearchTerm(input string) error {
	if len(input) > maxSearchTermLength {
		return fmt.Errorf("search term too long: %d characters (max %d)", len(input), maxSearchTermLength)
	}

	for _, r := range input {
		if unicode.IsControl(r) {
			return fmt.Errorf("search term contains control characters")
		}
	}

	lowered := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowered, pattern) {
			return fmt.Errorf("search term contains disallowed sequence")
		}
	}

	return nil
}

// ParseID parses a positive integer identifier (brand, generic or company id)
func ParseID(input string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("id must be numeric: %w", err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return id, nil
}

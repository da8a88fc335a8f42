// Package searchutil provides shared helpers for building case-insensitive
// substring queries against PostgreSQL.
package searchutil

import (
	"strings"
	"time"
)

// DefaultSearchTimeout bounds a single search request, including the
// fan-out across all entity lookups.
const DefaultSearchTimeout = 10 * time.Second

// ilikeEscaper escapes the characters that have special meaning inside an
// ILIKE pattern. Backslash must be escaped first.
var ilikeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern converts free text into an ILIKE pattern that matches any
// value containing the text as a literal substring. An empty input yields
// "%%", which matches every non-null value.
func ContainsPattern(text string) string {
	return "%" + ilikeEscaper.Replace(text) + "%"
}

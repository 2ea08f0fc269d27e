package supabase

import (
	"fmt"
	"regexp"
	"strings"
)

// breakingChars matches characters that change the meaning of a
// PostgREST filter expression when embedded in a needle.
var breakingChars = regexp.MustCompile(`[,\(\)\[\]\{\}"'|;]`)

// SanitizeSearchTerm strips characters that would break an or=
// expression, collapsing them to spaces. The result may be empty, in
// which case the needle is unusable and the caller should skip the
// filter.
func SanitizeSearchTerm(term string) string {
	cleaned := breakingChars.ReplaceAllString(term, " ")
	return strings.Join(strings.Fields(cleaned), " ")
}

// BuildOrIlike builds the body of an or= expression matching needle
// against any of the given columns:
//
//	BuildOrIlike([]string{"title", "pattern"}, "te")
//	// "title.ilike.*te*,pattern.ilike.*te*"
func BuildOrIlike(columns []string, needle string) string {
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, fmt.Sprintf("%s.ilike.*%s*", col, needle))
	}
	return strings.Join(parts, ",")
}

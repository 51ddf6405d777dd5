package normalize

import "strings"

// Text canonicalizes raw text for matching: lowercase, trim, hyphens to
// spaces, internal whitespace runs collapsed to single spaces. The empty
// string is the sentinel for "no value". Total over any input.
func Text(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}

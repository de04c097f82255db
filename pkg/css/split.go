package css

import "strings"

// SplitTopLevel splits a comma-delimited value list at top-level commas
// only. Commas nested inside parentheses, as in "rgba(0,0,0,0.5)", do not
// terminate an entry. Entries are trimmed and empty entries are dropped.
func SplitTopLevel(value string) []string {
	var entries []string
	depth := 0
	start := 0

	for i, r := range value {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				if entry := strings.TrimSpace(value[start:i]); entry != "" {
					entries = append(entries, entry)
				}
				start = i + 1
			}
		}
	}

	if entry := strings.TrimSpace(value[start:]); entry != "" {
		entries = append(entries, entry)
	}
	return entries
}

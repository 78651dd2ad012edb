package textutil

import "strings"

// Ellipsis marks a summary that was cut at the word budget.
const Ellipsis = "..."

var cellReplacer = strings.NewReplacer("|", "\\|")

// CollapseWhitespace trims the input and collapses internal runs of
// whitespace (spaces, tabs, newlines) into single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateWords cuts text to at most limit words joined by single spaces.
// The second return reports whether anything was dropped. A limit of zero
// or less returns the collapsed input unchanged.
func TruncateWords(s string, limit int) (string, bool) {
	words := strings.Fields(s)
	if limit <= 0 || len(words) <= limit {
		return strings.Join(words, " "), false
	}
	return strings.Join(words[:limit], " "), true
}

// EscapeCell escapes literal pipe characters so the value can be embedded
// in a markdown table cell without adding columns.
func EscapeCell(s string) string {
	return cellReplacer.Replace(s)
}

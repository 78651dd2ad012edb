package tips

import (
	"regexp"
	"strings"

	"tipcat/internal/services/ghcli"
)

// FromIssues converts tracker issues into Request entries. Only issues
// whose titles start with the prefix (case-insensitive, leading whitespace
// tolerated) qualify; the prefix is stripped from the catalogue title and
// bodies get the same media filtering and word budget as tip summaries.
// Input order is preserved.
func FromIssues(issues []ghcli.Issue, prefix string, summaryWords int) []Request {
	matcher := requestTitleMatcher(prefix)

	var requests []Request
	for _, issue := range issues {
		if !matcher.MatchString(issue.Title) {
			continue
		}
		requests = append(requests, Request{
			Title:   strings.TrimSpace(matcher.ReplaceAllString(issue.Title, "")),
			Summary: Summarize(issue.Body, summaryWords),
		})
	}
	return requests
}

func requestTitleMatcher(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^\s*` + regexp.QuoteMeta(strings.TrimSpace(prefix)) + `\s*`)
}

package tips

import "regexp"

// Placeholders substituted for media references in summaries. They are
// entity-escaped so they render literally inside a markdown table instead
// of being swallowed as HTML.
const (
	PlaceholderImage = "&lt;image&gt;"
	PlaceholderVideo = "&lt;video&gt;"
	PlaceholderAudio = "&lt;audio&gt;"
)

var (
	imgTagPattern        = regexp.MustCompile(`(?i)<im(?:g|age)\b[^>]*>`)
	videoTagPattern      = regexp.MustCompile(`(?is)<video[^>]*>(?:.*?</video>)?`)
	audioTagPattern      = regexp.MustCompile(`(?is)<audio[^>]*>(?:.*?</audio>)?`)
	markdownImagePattern = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	codeFencePattern     = regexp.MustCompile("```[a-zA-Z0-9]*[ \t]*")
	inlineCodePattern    = regexp.MustCompile("`([^`]+)`")
)

// FilterMedia replaces HTML and markdown media references with escaped
// placeholders and strips code-block and inline-code markers. It runs on
// plain text pulled out of tip files and on raw issue bodies, so it has to
// handle stray tags, lone media tokens, and markdown image syntax alike.
func FilterMedia(text string) string {
	text = imgTagPattern.ReplaceAllString(text, PlaceholderImage)
	text = videoTagPattern.ReplaceAllString(text, PlaceholderVideo)
	text = audioTagPattern.ReplaceAllString(text, PlaceholderAudio)
	text = markdownImagePattern.ReplaceAllString(text, PlaceholderImage)
	text = codeFencePattern.ReplaceAllString(text, "")
	text = inlineCodePattern.ReplaceAllString(text, "$1")
	return text
}

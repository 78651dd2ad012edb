package tips

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"tipcat/internal/textutil"
)

// DefaultTitle is used when a tip file carries no h1 heading.
const DefaultTitle = "No title found"

var tipFilePattern = regexp.MustCompile(`^(\d+)\.html$`)

// Extract pulls the tip number, title, and body summary out of one tip
// file. The number comes from the <digits>.html filename; a name that does
// not match fails extraction so the caller can skip the file. The returned
// Tip has no State; the branch scan fills it in.
func Extract(content, filePath string, summaryWords int) (Tip, error) {
	name := path.Base(filePath)
	match := tipFilePattern.FindStringSubmatch(name)
	if match == nil {
		return Tip{}, fmt.Errorf("cannot extract tip number from %s", name)
	}
	number, err := strconv.Atoi(match[1])
	if err != nil {
		return Tip{}, fmt.Errorf("tip number in %s: %w", name, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return Tip{}, fmt.Errorf("parse %s: %w", name, err)
	}

	title := DefaultTitle
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		if text := textutil.CollapseWhitespace(h1.Text()); text != "" {
			title = text
		}
	}

	return Tip{
		Number:  number,
		Title:   title,
		Summary: summarizeDocument(doc, summaryWords),
	}, nil
}

// summarizeDocument turns the document into a word-budgeted plain-text
// summary. Script and style subtrees contribute nothing; media elements
// collapse to placeholder tokens that FilterMedia rewrites into their
// escaped form.
func summarizeDocument(doc *goquery.Document, limit int) string {
	doc.Find("script, style").Remove()
	// The placeholder fragments decode to literal <image>/<video>/<audio>
	// text nodes, which FilterMedia then escapes for markdown.
	doc.Find("img").ReplaceWithHtml(PlaceholderImage)
	doc.Find("video").ReplaceWithHtml(PlaceholderVideo)
	doc.Find("audio").ReplaceWithHtml(PlaceholderAudio)

	return Summarize(documentText(doc), limit)
}

// documentText joins every text node with a space so words from adjacent
// block elements never run together. goquery's Text() concatenates nodes
// verbatim, which would glue "</h1><p>" boundaries into one word.
func documentText(doc *goquery.Document) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, node := range doc.Nodes {
		walk(node)
	}
	return b.String()
}

// Summarize collapses whitespace, filters media references, and cuts the
// text to the word budget, appending the ellipsis marker only when words
// were dropped.
func Summarize(text string, limit int) string {
	text = FilterMedia(text)
	text = textutil.CollapseWhitespace(text)
	out, truncated := textutil.TruncateWords(text, limit)
	if truncated {
		out += textutil.Ellipsis
	}
	return out
}

package catalogue

import (
	"fmt"
	"strconv"
	"strings"

	"tipcat/internal/textutil"
	"tipcat/internal/tips"
)

// Headers are the catalogue's table columns, in render order.
var Headers = []string{"Tip #", "Title", "Body", "State"}

// Render serializes the catalogue as a markdown document: heading, blank
// line, table header, alignment row, then one row per entry. Pipe
// characters inside titles and summaries are escaped so every data row
// keeps the header's column count.
func Render(c Catalogue, heading string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(heading))
	b.WriteString("\n\n")
	b.WriteString("| " + strings.Join(Headers, " | ") + " |\n")
	b.WriteString("|-------|-------|------|-------|\n")

	for _, tip := range c.Numbered {
		writeRow(&b, strconv.Itoa(tip.Number), tip.Title, tip.Summary, string(tip.State))
	}
	for _, req := range c.Requests {
		writeRow(&b, "", req.Title, req.Summary, string(tips.StateRequested))
	}

	return b.String()
}

func writeRow(b *strings.Builder, number, title, summary, state string) {
	fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
		number,
		textutil.EscapeCell(title),
		textutil.EscapeCell(summary),
		state,
	)
}

package tips

import (
	"strings"
	"testing"
)

func TestExtractNumberFromFilename(t *testing.T) {
	tests := []struct {
		name string
		path string
		want int
	}{
		{"plain", "tips/1.html", 1},
		{"zero padded", "tips/007.html", 7},
		{"large", "tips/123456.html", 123456},
		{"no directory", "42.html", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tip, err := Extract("<h1>T</h1>", tt.path, 50)
			if err != nil {
				t.Fatalf("Extract returned error: %v", err)
			}
			if tip.Number != tt.want {
				t.Errorf("Extract number = %d, want %d", tip.Number, tt.want)
			}
		})
	}
}

func TestExtractRejectsBadFilenames(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"no digits", "tips/readme.html"},
		{"wrong extension", "tips/1.htm"},
		{"digits plus text", "tips/1-intro.html"},
		{"markdown", "tips/2.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Extract("<h1>T</h1>", tt.path, 50); err == nil {
				t.Errorf("expected extraction to fail for %q", tt.path)
			}
		})
	}
}

func TestExtractTitleCollapsesWhitespace(t *testing.T) {
	content := "<html><body><h1>\n  Use   the\n\tuploader </h1><p>Body</p></body></html>"
	tip, err := Extract(content, "tips/3.html", 50)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if tip.Title != "Use the uploader" {
		t.Errorf("title = %q, want %q", tip.Title, "Use the uploader")
	}
}

func TestExtractTitleNestedMarkup(t *testing.T) {
	content := "<h1>Use <em>the</em> uploader</h1>"
	tip, err := Extract(content, "tips/3.html", 50)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if tip.Title != "Use the uploader" {
		t.Errorf("title = %q, want %q", tip.Title, "Use the uploader")
	}
}

func TestExtractTitleDefaultsWhenMissing(t *testing.T) {
	tip, err := Extract("<p>no heading here</p>", "tips/4.html", 50)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if tip.Title != DefaultTitle {
		t.Errorf("title = %q, want default %q", tip.Title, DefaultTitle)
	}
}

func TestExtractSummaryDropsScriptAndStyle(t *testing.T) {
	content := `<html><head><style>body { color: red }</style></head>` +
		`<body><h1>Hi</h1><script>var secret = 1;</script><p>visible words</p></body></html>`
	tip, err := Extract(content, "tips/5.html", 50)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if strings.Contains(tip.Summary, "secret") || strings.Contains(tip.Summary, "color") {
		t.Errorf("summary leaked script/style content: %q", tip.Summary)
	}
	if !strings.Contains(tip.Summary, "visible words") {
		t.Errorf("summary lost body text: %q", tip.Summary)
	}
}

func TestExtractSummaryReplacesMedia(t *testing.T) {
	content := `<h1>Media</h1><p>before</p><img src="shot.png" alt="x">` +
		`<video controls><source src="demo.mp4">fallback text</video>` +
		`<audio src="clip.ogg">audio fallback</audio><p>after</p>`
	tip, err := Extract(content, "tips/6.html", 50)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	for _, verbatim := range []string{"<img", "<video", "<audio", "fallback"} {
		if strings.Contains(tip.Summary, verbatim) {
			t.Errorf("summary contains verbatim media %q: %q", verbatim, tip.Summary)
		}
	}
	for _, placeholder := range []string{PlaceholderImage, PlaceholderVideo, PlaceholderAudio} {
		if !strings.Contains(tip.Summary, placeholder) {
			t.Errorf("summary missing placeholder %q: %q", placeholder, tip.Summary)
		}
	}
	if !strings.Contains(tip.Summary, "before") || !strings.Contains(tip.Summary, "after") {
		t.Errorf("summary lost surrounding text: %q", tip.Summary)
	}
}

func TestExtractSummaryTruncation(t *testing.T) {
	words := make([]string, 60)
	for i := range words {
		words[i] = "word"
	}
	content := "<h1>Long</h1><p>" + strings.Join(words, " ") + "</p>"
	tip, err := Extract(content, "tips/7.html", 50)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if !strings.HasSuffix(tip.Summary, "...") {
		t.Fatalf("expected ellipsis marker, got %q", tip.Summary)
	}
	if n := len(strings.Fields(strings.TrimSuffix(tip.Summary, "..."))); n != 50 {
		t.Errorf("expected exactly 50 words before marker, got %d", n)
	}
}

func TestExtractSummaryShortBodyKeepsAllWords(t *testing.T) {
	tip, err := Extract("<h1>Short</h1><p>just a few words</p>", "tips/8.html", 50)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if strings.Contains(tip.Summary, "...") {
		t.Errorf("unexpected ellipsis for short body: %q", tip.Summary)
	}
	if tip.Summary != "Short just a few words" {
		t.Errorf("summary = %q, want heading plus body words", tip.Summary)
	}
}

func TestSummarizeFiltersMarkdownAndCode(t *testing.T) {
	got := Summarize("See ![screenshot](shot.png) and run `galaxy start` today", 50)
	if strings.Contains(got, "![") {
		t.Errorf("markdown image survived: %q", got)
	}
	if !strings.Contains(got, PlaceholderImage) {
		t.Errorf("missing image placeholder: %q", got)
	}
	if !strings.Contains(got, "galaxy start") {
		t.Errorf("inline code content lost: %q", got)
	}
	if strings.Contains(got, "`") {
		t.Errorf("backtick survived: %q", got)
	}
}

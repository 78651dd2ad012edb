package textutil

import (
	"strings"
	"testing"
)

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"only spaces", "   \t\n  ", ""},
		{"already clean", "one two three", "one two three"},
		{"mixed runs", "  one\t\ttwo \n three  ", "one two three"},
		{"newlines inside", "line\none\n\nline two", "line one line two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollapseWhitespace(tt.in); got != tt.want {
				t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncateWordsUnderLimit(t *testing.T) {
	got, truncated := TruncateWords("alpha beta gamma", 5)
	if truncated {
		t.Fatal("expected no truncation for input under the limit")
	}
	if got != "alpha beta gamma" {
		t.Errorf("TruncateWords() = %q, want all words preserved", got)
	}
}

func TestTruncateWordsAtLimit(t *testing.T) {
	got, truncated := TruncateWords("alpha beta gamma", 3)
	if truncated {
		t.Fatal("expected no truncation for input exactly at the limit")
	}
	if got != "alpha beta gamma" {
		t.Errorf("TruncateWords() = %q, want all words preserved", got)
	}
}

func TestTruncateWordsOverLimit(t *testing.T) {
	words := make([]string, 60)
	for i := range words {
		words[i] = "w"
	}
	got, truncated := TruncateWords(strings.Join(words, " "), 50)
	if !truncated {
		t.Fatal("expected truncation for 60 words against a budget of 50")
	}
	if n := len(strings.Fields(got)); n != 50 {
		t.Errorf("expected exactly 50 words, got %d", n)
	}
}

func TestTruncateWordsZeroLimit(t *testing.T) {
	got, truncated := TruncateWords("a  b   c", 0)
	if truncated {
		t.Fatal("limit <= 0 must not truncate")
	}
	if got != "a b c" {
		t.Errorf("TruncateWords() = %q, want collapsed input", got)
	}
}

func TestEscapeCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no pipes", "plain title", "plain title"},
		{"single pipe", "a | b", "a \\| b"},
		{"many pipes", "|x||", "\\|x\\|\\|"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeCell(tt.in); got != tt.want {
				t.Errorf("EscapeCell(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

package utils

import (
	"strings"
	"testing"
)

func TestSplitWords(t *testing.T) {
	words := make([]string, 1200)
	for i := range words {
		words[i] = "w"
	}
	text := strings.Join(words, " ")

	chunks := SplitWords(text, 500, 50)

	if len(chunks) == 0 {
		t.Fatal("expected chunks for non-empty input")
	}

	// Stride is size-overlap, so consecutive chunks share the overlap words.
	for i, chunk := range chunks {
		n := len(strings.Fields(chunk))
		if n > 500 {
			t.Errorf("chunk %d has %d words, cap is 500", i, n)
		}
	}

	// Every word must land in at least one chunk.
	total := 0
	for i, chunk := range chunks {
		n := len(strings.Fields(chunk))
		if i > 0 {
			n -= 50 // overlap shared with previous chunk
		}
		total += n
	}
	if total != 1200 {
		t.Errorf("coverage = %d words, want 1200", total)
	}
}

func TestSplitWordsShortInput(t *testing.T) {
	chunks := SplitWords("just a few words", 500, 50)
	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1", len(chunks))
	}
	if chunks[0] != "just a few words" {
		t.Errorf("chunk = %q", chunks[0])
	}
}

func TestSplitWordsEmptyInput(t *testing.T) {
	if chunks := SplitWords("   ", 500, 50); len(chunks) != 0 {
		t.Errorf("chunks = %d, want 0", len(chunks))
	}
}

func TestSplitWordsDegenerateOverlap(t *testing.T) {
	// Overlap >= size must not loop forever.
	chunks := SplitWords(strings.Repeat("x ", 30), 10, 10)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"under limit", "pivot to value", 10, "pivot to value"},
		{"exact limit", "one two three", 3, "one two three"},
		{"over limit", "one two three four", 3, "one two three"},
		{"collapses whitespace", "one   two\tthree four", 3, "one two three"},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateWords(tt.text, tt.limit); got != tt.want {
				t.Errorf("TruncateWords() = %q, want %q", got, tt.want)
			}
		})
	}
}

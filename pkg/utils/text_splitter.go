package utils

import "strings"

// SplitWords splits text into overlapping word-count chunks. Each chunk holds
// at most 'size' whitespace-delimited words; successive chunks share 'overlap'
// words (stride = size - overlap). Blank chunks are dropped and order is
// preserved, so a chunk's position in the result is its chunk index.
func SplitWords(text string, size int, overlap int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if size <= 0 {
		size = 500
	}

	step := size - overlap
	if step <= 0 {
		step = size // fallback if overlap >= size
	}

	var chunks []string
	for i := 0; i < len(words); i += step {
		end := i + size
		if end > len(words) {
			end = len(words)
		}

		chunk := strings.TrimSpace(strings.Join(words[i:end], " "))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(words) {
			break
		}
	}

	return chunks
}

// TruncateWords keeps at most 'limit' whitespace-delimited words, rejoined
// with single spaces.
func TruncateWords(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) > limit {
		words = words[:limit]
	}
	return strings.Join(words, " ")
}

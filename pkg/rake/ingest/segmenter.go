package ingest

import "strings"

// sentenceDelimiters end a sentence-like unit.
const sentenceDelimiters = ".,"

// Segment lowercases text and splits it on every '.' and ','.
// Delimiters are consumed. Empty units between adjacent delimiters, and the
// trailing unit after the last delimiter, are kept, so the result always has
// one more element than there are delimiters. Surrounding whitespace is left
// for the extractor's tokenization.
func Segment(text string) []string {
	lower := strings.ToLower(text)

	sentences := make([]string, 0, strings.Count(lower, ".")+strings.Count(lower, ",")+1)
	start := 0
	for i, r := range lower {
		if strings.ContainsRune(sentenceDelimiters, r) {
			sentences = append(sentences, lower[start:i])
			start = i + 1
		}
	}
	sentences = append(sentences, lower[start:])

	return sentences
}

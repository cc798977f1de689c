package ingest

import "strings"

// StopSet reports whether a token delimits candidate phrases.
type StopSet interface {
	IsStop(token string) bool
}

// Extractor splits sentences into candidate keyphrases at stopword boundaries.
type Extractor struct {
	stops StopSet
}

// NewExtractor creates an extractor using the given stopword set
func NewExtractor(stops StopSet) *Extractor {
	return &Extractor{stops: stops}
}

// Extract returns every maximal run of non-stopword tokens, in order, as a
// single-space-joined phrase. Identical phrases are all kept.
func (e *Extractor) Extract(sentences []string) []string {
	var candidates []string
	var phrase []string

	flush := func() {
		if len(phrase) > 0 {
			candidates = append(candidates, strings.Join(phrase, " "))
			phrase = phrase[:0]
		}
	}

	for _, sentence := range sentences {
		for _, word := range strings.Fields(sentence) {
			if e.stops.IsStop(word) {
				flush()
				continue
			}
			phrase = append(phrase, word)
		}
		// phrases never span sentences
		flush()
	}

	return candidates
}

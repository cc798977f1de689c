// Package score computes RAKE word and phrase scores from candidate phrases.
package score

import "strings"

// WordScores returns degree/frequency for every word in the candidates.
// Words that never occur get no entry.
func WordScores(candidates []string) map[string]float64 {
	c := NewCounter()
	for _, p := range candidates {
		c.AddPhrase(p)
	}
	return c.Scores()
}

// PhraseScore sums the word scores of a phrase. Words missing from
// wordScores contribute nothing.
func PhraseScore(phrase string, wordScores map[string]float64) float64 {
	total := 0.0
	for _, w := range strings.Fields(phrase) {
		if s, ok := wordScores[w]; ok {
			total += s
		}
	}
	return total
}

// Phrases scores every candidate. Textually identical candidates share one
// entry: the score is recomputed, not added, and the repeat is counted in
// Occurrences.
func Phrases(candidates []string, wordScores map[string]float64) *PhraseScores {
	ps := NewPhraseScores(len(candidates))
	for _, p := range candidates {
		ps.Set(p, PhraseScore(p, wordScores))
	}
	return ps
}

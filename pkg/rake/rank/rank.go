// Package rank orders scored keyphrases for presentation.
package rank

import (
	"cmp"
	"sort"

	"github.com/cognicore/rake/pkg/rake/score"
)

// Pair is a ranked keyphrase
type Pair struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

// Compare is a total order over scores. NaN orders below every other value,
// and -0 equals +0.
func Compare(a, b float64) int {
	return cmp.Compare(a, b)
}

// Descending returns phrases from highest to lowest score. Equal scores keep
// discovery order, so the result is the same on every run.
func Descending(ps *score.PhraseScores) []Pair {
	entries := ps.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return Compare(entries[i].Score, entries[j].Score) > 0
	})

	pairs := make([]Pair, len(entries))
	for i, e := range entries {
		pairs[i] = Pair{Phrase: e.Phrase, Score: e.Score}
	}
	return pairs
}

// Ascending returns the exact reverse of Descending: lowest score first, and
// equal scores in reverse discovery order.
func Ascending(ps *score.PhraseScores) []Pair {
	pairs := Descending(ps)
	for i, j := 0, len(pairs)-1; i < j; i, j = i+1, j-1 {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	}
	return pairs
}

// Top returns at most n pairs. n <= 0 returns all of them.
func Top(pairs []Pair, n int) []Pair {
	if n <= 0 || n >= len(pairs) {
		return pairs
	}
	return pairs[:n]
}

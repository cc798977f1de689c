package score

// Entry is one phrase and its score
type Entry struct {
	Phrase      string
	Score       float64
	Occurrences int
}

// PhraseScores maps phrase text to score and remembers the order in which
// phrases were first seen. Ranking ties fall back to that order.
type PhraseScores struct {
	index   map[string]int
	entries []Entry
}

// NewPhraseScores creates an empty map with room for n phrases
func NewPhraseScores(n int) *PhraseScores {
	return &PhraseScores{
		index:   make(map[string]int, n),
		entries: make([]Entry, 0, n),
	}
}

// Set stores score for phrase. A phrase seen before keeps its discovery
// position, has its score overwritten and its occurrence count incremented.
func (ps *PhraseScores) Set(phrase string, score float64) {
	if i, ok := ps.index[phrase]; ok {
		ps.entries[i].Score = score
		ps.entries[i].Occurrences++
		return
	}
	ps.index[phrase] = len(ps.entries)
	ps.entries = append(ps.entries, Entry{Phrase: phrase, Score: score, Occurrences: 1})
}

// Get returns the score for phrase
func (ps *PhraseScores) Get(phrase string) (float64, bool) {
	i, ok := ps.index[phrase]
	if !ok {
		return 0, false
	}
	return ps.entries[i].Score, true
}

// Occurrences returns how many candidates had this exact text
func (ps *PhraseScores) Occurrences(phrase string) int {
	i, ok := ps.index[phrase]
	if !ok {
		return 0
	}
	return ps.entries[i].Occurrences
}

// Len returns the number of distinct phrases
func (ps *PhraseScores) Len() int {
	return len(ps.entries)
}

// Entries returns a copy of all entries in discovery order
func (ps *PhraseScores) Entries() []Entry {
	out := make([]Entry, len(ps.entries))
	copy(out, ps.entries)
	return out
}

// Phrases returns the distinct phrases in discovery order
func (ps *PhraseScores) Phrases() []string {
	out := make([]string, len(ps.entries))
	for i, e := range ps.entries {
		out[i] = e.Phrase
	}
	return out
}

// Map returns the scores as a plain map
func (ps *PhraseScores) Map() map[string]float64 {
	out := make(map[string]float64, len(ps.entries))
	for _, e := range ps.entries {
		out[e.Phrase] = e.Score
	}
	return out
}

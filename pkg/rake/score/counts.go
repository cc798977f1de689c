package score

import "strings"

// Counter accumulates word frequency and degree over candidate phrases
type Counter struct {
	Freq   map[string]int64 // occurrences per word
	Degree map[string]int64 // sum of containing-phrase lengths per word
}

// NewCounter creates a new word counter
func NewCounter() *Counter {
	return &Counter{
		Freq:   make(map[string]int64),
		Degree: make(map[string]int64),
	}
}

// AddPhrase updates counts for every word of a candidate phrase. Each
// occurrence adds 1 to the word's frequency and the phrase's word count to
// its degree.
func (c *Counter) AddPhrase(phrase string) {
	words := strings.Fields(phrase)
	n := int64(len(words))
	for _, w := range words {
		c.Freq[w]++
		c.Degree[w] += n
	}
}

// Merge folds the counts of other into c.
func (c *Counter) Merge(other *Counter) {
	for w, f := range other.Freq {
		c.Freq[w] += f
	}
	for w, d := range other.Degree {
		c.Degree[w] += d
	}
}

// Score returns degree/frequency for a word, and false if it was never seen
func (c *Counter) Score(word string) (float64, bool) {
	f := c.Freq[word]
	if f == 0 {
		return 0, false
	}
	return float64(c.Degree[word]) / float64(f), true
}

// Scores returns the score of every observed word
func (c *Counter) Scores() map[string]float64 {
	scores := make(map[string]float64, len(c.Freq))
	for w, f := range c.Freq {
		scores[w] = float64(c.Degree[w]) / float64(f)
	}
	return scores
}

// UniqueWords returns the number of distinct words counted
func (c *Counter) UniqueWords() int {
	return len(c.Freq)
}

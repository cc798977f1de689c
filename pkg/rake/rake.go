// Package rake implements Rapid Automatic Keyword Extraction: candidate
// keyphrases are split at stopwords and ranked by word co-occurrence degree
// over frequency, using only the document itself.
package rake

import (
	"crypto/rand"
	"sync"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/cognicore/rake/pkg/rake/ingest"
	"github.com/cognicore/rake/pkg/rake/rank"
	"github.com/cognicore/rake/pkg/rake/score"
	"github.com/cognicore/rake/pkg/rake/stoplist"
)

// Rake is a configured extractor. Its stopword set is fixed at construction;
// use a new instance to change it. Process is safe for concurrent use.
type Rake struct {
	stops    *stoplist.Manager
	pipeline *ingest.Pipeline
	workers  int
	logger   *zap.Logger

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Options configures a Rake instance
type Options struct {
	// Stopwords replaces the built-in list when non-nil. Entries are used
	// verbatim and should be lowercase.
	Stopwords []string
	// Language selects a built-in list when Stopwords is nil.
	// Unknown codes fall back to English.
	Language string
	// Workers > 1 scores candidate phrases concurrently.
	Workers int
	Logger  *zap.Logger
}

// New creates a Rake instance
func New(opts Options) *Rake {
	words := opts.Stopwords
	if words == nil {
		words = stoplist.ForLanguage(opts.Language)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	stops := stoplist.NewManager(words)
	return &Rake{
		stops:    stops,
		pipeline: ingest.NewPipeline(ingest.NewExtractor(stops)),
		workers:  opts.Workers,
		logger:   logger,
		entropy:  ulid.Monotonic(rand.Reader, 0),
	}
}

// NewForLanguage creates a Rake instance using a built-in stopword list
func NewForLanguage(code string) *Rake {
	return New(Options{Language: code})
}

// Stopwords returns the active stopword list
func (r *Rake) Stopwords() []string {
	return r.stops.All()
}

// Process runs the full pipeline over text
func (r *Rake) Process(text string) *Result {
	doc := r.pipeline.Process(text)

	var wordScores map[string]float64
	var phraseScores *score.PhraseScores
	if r.workers > 1 {
		wordScores = score.ParallelWordScores(doc.Candidates, r.workers)
		phraseScores = score.ParallelPhrases(doc.Candidates, wordScores, r.workers)
	} else {
		wordScores = score.WordScores(doc.Candidates)
		phraseScores = score.Phrases(doc.Candidates, wordScores)
	}

	res := &Result{
		ID:           r.newID(),
		sentences:    doc.Sentences,
		candidates:   doc.Candidates,
		wordScores:   wordScores,
		phraseScores: phraseScores,
	}

	r.logger.Debug("processed document",
		zap.String("id", res.ID),
		zap.Int("sentences", len(doc.Sentences)),
		zap.Int("candidates", len(doc.Candidates)),
		zap.Int("words", len(wordScores)),
		zap.Int("phrases", phraseScores.Len()),
	)

	return res
}

func (r *Rake) newID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ulid.MustNew(ulid.Now(), r.entropy).String()
}

// Result holds every stage of one extraction run
type Result struct {
	ID string

	sentences    []string
	candidates   []string
	wordScores   map[string]float64
	phraseScores *score.PhraseScores
}

// Sentences returns the segmented, lowercased text
func (res *Result) Sentences() []string {
	return append([]string(nil), res.sentences...)
}

// Candidates returns every candidate phrase, duplicates included
func (res *Result) Candidates() []string {
	return append([]string(nil), res.candidates...)
}

// WordScores returns a copy of the word score map
func (res *Result) WordScores() map[string]float64 {
	out := make(map[string]float64, len(res.wordScores))
	for w, s := range res.wordScores {
		out[w] = s
	}
	return out
}

// PhraseScores returns a copy of the phrase score map
func (res *Result) PhraseScores() map[string]float64 {
	return res.phraseScores.Map()
}

// Keyphrases returns the distinct candidate phrases in discovery order
func (res *Result) Keyphrases() []string {
	return res.phraseScores.Phrases()
}

// Occurrences returns how many times phrase was extracted
func (res *Result) Occurrences(phrase string) int {
	return res.phraseScores.Occurrences(phrase)
}

// Descending returns keyphrases from highest to lowest score
func (res *Result) Descending() []rank.Pair {
	return rank.Descending(res.phraseScores)
}

// Ascending returns keyphrases from lowest to highest score
func (res *Result) Ascending() []rank.Pair {
	return rank.Ascending(res.phraseScores)
}

// Top returns the n highest-scoring keyphrases
func (res *Result) Top(n int) []rank.Pair {
	return rank.Top(res.Descending(), n)
}

// Ranked returns the ascending or descending view cut to top entries.
// top <= 0 keeps every entry.
func (res *Result) Ranked(ascending bool, top int) []rank.Pair {
	if ascending {
		return rank.Top(res.Ascending(), top)
	}
	return rank.Top(res.Descending(), top)
}

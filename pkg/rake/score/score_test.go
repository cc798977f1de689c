package score

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCounterBasic(t *testing.T) {
	counter := NewCounter()
	counter.AddPhrase("feature extraction")
	counter.AddPhrase("complex")

	if counter.Freq["feature"] != 1 || counter.Degree["feature"] != 2 {
		t.Errorf("feature: freq=%d degree=%d, want 1/2", counter.Freq["feature"], counter.Degree["feature"])
	}
	if counter.Freq["complex"] != 1 || counter.Degree["complex"] != 1 {
		t.Errorf("complex: freq=%d degree=%d, want 1/1", counter.Freq["complex"], counter.Degree["complex"])
	}
	if counter.UniqueWords() != 3 {
		t.Errorf("Expected 3 unique words, got %d", counter.UniqueWords())
	}
	if _, ok := counter.Score("missing"); ok {
		t.Error("unseen word should have no score")
	}
}

func TestWordScoresScenario(t *testing.T) {
	scores := WordScores([]string{"feature extraction", "complex"})

	want := map[string]float64{"feature": 2.0, "extraction": 2.0, "complex": 1.0}
	if !reflect.DeepEqual(scores, want) {
		t.Errorf("WordScores() = %v, want %v", scores, want)
	}
}

func TestWordScoresRepeatedWord(t *testing.T) {
	// extraction: freq 3, degree 2+2+4
	scores := WordScores([]string{
		"feature extraction",
		"feature extraction",
		"rapid automatic keyword extraction",
	})

	if !almostEqual(scores["extraction"], 8.0/3.0) {
		t.Errorf("extraction = %v, want %v", scores["extraction"], 8.0/3.0)
	}
	if !almostEqual(scores["feature"], 2.0) {
		t.Errorf("feature = %v, want 2", scores["feature"])
	}
	if !almostEqual(scores["rapid"], 4.0) {
		t.Errorf("rapid = %v, want 4", scores["rapid"])
	}
}

func TestWordScoresSingleWordPhrasesScoreOne(t *testing.T) {
	scores := WordScores([]string{"help", "help", "complex", "help"})

	for w, s := range scores {
		if s != 1.0 {
			t.Errorf("%s = %v, want exactly 1.0", w, s)
		}
	}
}

func TestWordScoresEmpty(t *testing.T) {
	if scores := WordScores(nil); len(scores) != 0 {
		t.Errorf("Expected no scores, got %v", scores)
	}
}

func TestPhrasesScenario(t *testing.T) {
	candidates := []string{"feature extraction", "complex"}
	ps := Phrases(candidates, WordScores(candidates))

	if s, _ := ps.Get("feature extraction"); s != 4.0 {
		t.Errorf("feature extraction = %v, want 4", s)
	}
	if s, _ := ps.Get("complex"); s != 1.0 {
		t.Errorf("complex = %v, want 1", s)
	}
	if ps.Len() != 2 {
		t.Errorf("Expected 2 phrases, got %d", ps.Len())
	}
}

func TestPhrasesDuplicateOverwrites(t *testing.T) {
	candidates := []string{"deep learning", "models", "deep learning"}
	ps := Phrases(candidates, WordScores(candidates))

	if ps.Len() != 2 {
		t.Fatalf("Expected 2 distinct phrases, got %d", ps.Len())
	}
	if s, _ := ps.Get("deep learning"); s != 4.0 {
		t.Errorf("deep learning = %v, want 4 (not accumulated)", s)
	}
	if n := ps.Occurrences("deep learning"); n != 2 {
		t.Errorf("Expected 2 occurrences, got %d", n)
	}
	if got := ps.Phrases(); !reflect.DeepEqual(got, []string{"deep learning", "models"}) {
		t.Errorf("Phrases() = %v", got)
	}
}

func TestPhraseScoreMissingWordContributesNothing(t *testing.T) {
	got := PhraseScore("known unknown", map[string]float64{"known": 1.5})
	if got != 1.5 {
		t.Errorf("PhraseScore() = %v, want 1.5", got)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	var candidates []string
	for i := 0; i < 200; i++ {
		candidates = append(candidates, fmt.Sprintf("word%d shared term%d", i%7, i%13))
		candidates = append(candidates, "shared")
	}

	seq := WordScores(candidates)
	for _, workers := range []int{0, 1, 3, 8, 1000} {
		par := ParallelWordScores(candidates, workers)
		if len(par) != len(seq) {
			t.Fatalf("workers=%d: %d scores, want %d", workers, len(par), len(seq))
		}
		for w, s := range seq {
			if !almostEqual(par[w], s) {
				t.Errorf("workers=%d: %s = %v, want %v", workers, w, par[w], s)
			}
		}

		ps := ParallelPhrases(candidates, seq, workers)
		if !reflect.DeepEqual(ps.Entries(), Phrases(candidates, seq).Entries()) {
			t.Errorf("workers=%d: phrase entries differ from sequential", workers)
		}
	}
}

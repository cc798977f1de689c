package score

import "sync"

// shard splits n items into at most workers contiguous ranges
func shard(n, workers int) [][2]int {
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	size := (n + workers - 1) / workers
	var ranges [][2]int
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		ranges = append(ranges, [2]int{lo, hi})
	}
	return ranges
}

// ParallelWordScores is WordScores with per-worker counters merged before
// division. The result is identical to WordScores.
func ParallelWordScores(candidates []string, workers int) map[string]float64 {
	if workers <= 1 || len(candidates) < 2 {
		return WordScores(candidates)
	}

	ranges := shard(len(candidates), workers)
	counters := make([]*Counter, len(ranges))

	var wg sync.WaitGroup
	for i, r := range ranges {
		wg.Add(1)
		go func(i int, lo, hi int) {
			defer wg.Done()
			c := NewCounter()
			for _, p := range candidates[lo:hi] {
				c.AddPhrase(p)
			}
			counters[i] = c
		}(i, r[0], r[1])
	}
	wg.Wait()

	total := NewCounter()
	for _, c := range counters {
		total.Merge(c)
	}
	return total.Scores()
}

// ParallelPhrases is Phrases with the per-phrase sums computed concurrently.
// wordScores must not be modified while it runs. Discovery order is kept.
func ParallelPhrases(candidates []string, wordScores map[string]float64, workers int) *PhraseScores {
	if workers <= 1 || len(candidates) < 2 {
		return Phrases(candidates, wordScores)
	}

	sums := make([]float64, len(candidates))
	var wg sync.WaitGroup
	for _, r := range shard(len(candidates), workers) {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				sums[i] = PhraseScore(candidates[i], wordScores)
			}
		}(r[0], r[1])
	}
	wg.Wait()

	ps := NewPhraseScores(len(candidates))
	for i, p := range candidates {
		ps.Set(p, sums[i])
	}
	return ps
}

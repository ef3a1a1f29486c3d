package quiz

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// Sampler draws random subsets and permutations from an injectable source.
// It is safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler wraps src. A nil src is replaced with a randomly seeded PCG.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Sampler{rng: rand.New(src)}
}

// NewSeededSampler returns a Sampler whose draws are reproducible for seed.
func NewSeededSampler(seed uint64) *Sampler {
	return NewSampler(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IntN returns a uniform int in [0, n).
func (s *Sampler) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Float64 returns a uniform float in [0, 1).
func (s *Sampler) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Chance returns true with probability p.
func (s *Sampler) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.Float64() < p
}

// Shuffle permutes n elements uniformly through swap.
func (s *Sampler) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(n, swap)
}

// Sample returns min(k, len(items)) distinct elements of items chosen
// uniformly without replacement. items is not modified.
func Sample[T any](s *Sampler, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return nil
	}

	out := slices.Clone(items)

	// Fisher-Yates stopped after k steps.
	s.mu.Lock()
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(len(out)-i)
		out[i], out[j] = out[j], out[i]
	}
	s.mu.Unlock()

	return out[:k:k]
}

// ShuffleSlice permutes items in place.
func ShuffleSlice[T any](s *Sampler, items []T) {
	s.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// Distractors picks up to count wrong answers for correct from pool.
// Verbs are excluded by ID only, so another verb with the same
// translation string may still be returned.
func (s *Sampler) Distractors(correct vocab.Verb, pool []vocab.Verb, count int, field vocab.Field) []string {
	others := make([]vocab.Verb, 0, len(pool))
	for _, v := range pool {
		if v.ID != correct.ID {
			others = append(others, v)
		}
	}

	picked := Sample(s, others, count)
	out := make([]string, len(picked))
	for i, v := range picked {
		out[i] = v.Text(field)
	}
	return out
}

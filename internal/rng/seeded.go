package rng

import "math/rand"

// Seeded is a deterministic generator for tests and replays
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a generator seeded with the provided value.
// The same seed always yields the same sequence.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rng: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn will return a random number up to but not including n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

package rng

// Generator is the source of randomness used when shuffling a deck.
// Implementations must return a value in [0, n).
type Generator interface {
	Intn(n int) int
}

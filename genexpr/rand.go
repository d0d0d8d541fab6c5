package genexpr

import "math/rand"

// Rand is the source of randomness for seeding, selection, crossover and mutation.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

package learner

import (
	"time"

	"golang.org/x/exp/rand"
)

// Hyperparameters for Q-learning

const Epsilon = 0.4 // Exploration rate
const Alpha = 0.3   // Learning rate
const Gamma = 0.9   // Discount factor

// Optimism bias for unseen (state, action) pairs
const DefaultValue = 1.0

// Rand is the single source of randomness used for exploration and tie-breaking.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source, a zero seed draws one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

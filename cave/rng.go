// Randomness used by Initialize.
//
// Every trial draws from an explicit Source; there is no package-level RNG.
// math/rand style generators are NOT goroutine-safe: give each Engine its own.

package cave

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source yields uniformly distributed values in [0,1).
// *rand.Rand from golang.org/x/exp/rand and math/rand both satisfy it.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed Source. seed==0 ⇒ a time-derived seed,
// otherwise the seed is used verbatim and the stream is reproducible.
// Complexity: O(1).
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = timeSeed()
	}
	return rand.New(rand.NewSource(seed))
}

// timeSeed never returns 0 so the result can be fed back into NewSource.
func timeSeed() uint64 {
	s := uint64(time.Now().UnixNano())
	if s == 0 {
		s = 1
	}
	return s
}

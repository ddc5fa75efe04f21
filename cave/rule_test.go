package cave

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRule_Transitions walks every neighbor count for both cell states.
// With live == born == 5 a wall survives at n=5 while an open cell needs n=6.
func TestRule_Transitions(t *testing.T) {
	for n := 0; n <= 8; n++ {
		require.Equal(t, n >= LiveThreshold, erosionRule.next(true, n), "wall n=%d", n)
		require.Equal(t, n > BornThreshold, erosionRule.next(false, n), "open n=%d", n)
	}
}

// TestRule_DivergentThresholds checks the comparisons stay independent when
// the two constants are tuned apart.
func TestRule_DivergentThresholds(t *testing.T) {
	r := rule{live: 3, born: 6}

	require.False(t, r.next(true, 2))
	require.True(t, r.next(true, 3))
	require.False(t, r.next(false, 6))
	require.True(t, r.next(false, 7))
	// Between the thresholds both states hold.
	require.True(t, r.next(true, 5))
	require.False(t, r.next(false, 5))
}

func TestNewEngineConfig_Defaults(t *testing.T) {
	cfg := newEngineConfig()
	require.NotNil(t, cfg.src)
	require.Zero(t, cfg.seed)

	cfg = newEngineConfig(WithSeed(7))
	require.Equal(t, uint64(7), cfg.seed)
	require.NotNil(t, cfg.src)
}

func TestTimeSeed_NonZero(t *testing.T) {
	require.NotZero(t, timeSeed())
}

package settings

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcave/cave"
)

// Settings holds one run's tunables. Nothing is persisted.
type Settings struct {
	// WallProbability is meaningful in (0,1); other values are accepted and
	// degrade to all-open or all-wall.
	WallProbability float64
	// Iterations is the number of erosion passes (>= 0).
	Iterations int
}

// Defaults returns the documented fallback settings.
func Defaults() Settings {
	return Settings{
		WallProbability: cave.DefaultWallProbability,
		Iterations:      cave.DefaultIterations,
	}
}

// ParseWallProbability parses raw as a float after trimming whitespace.
// Any parse failure yields cave.DefaultWallProbability.
func ParseWallProbability(raw string) float64 {
	p, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return cave.DefaultWallProbability
	}
	return p
}

// ParseIterations parses raw as an unsigned 32-bit count after trimming
// whitespace. Negative, fractional, oversized or non-numeric input yields
// cave.DefaultIterations.
func ParseIterations(raw string) int {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return cave.DefaultIterations
	}
	return int(n)
}

// Parse resolves both raw answers at once.
func Parse(rawProbability, rawIterations string) Settings {
	return Settings{
		WallProbability: ParseWallProbability(rawProbability),
		Iterations:      ParseIterations(rawIterations),
	}
}

// SPDX-License-Identifier: MIT

package cave

// Size is the dimension of every generated grid.
const Size = 50

// Erosion thresholds. They are tuned independently even though both
// currently hold the same value.
const (
	// LiveThreshold is the minimum wall-neighbor count for a wall to survive (inclusive).
	LiveThreshold = 5
	// BornThreshold must be strictly exceeded for an open cell to become a wall.
	BornThreshold = 5
)

// Generation defaults used when no usable value is supplied.
const (
	// DefaultWallProbability is the chance of a cell starting as a wall.
	DefaultWallProbability = 0.7
	// DefaultIterations is the number of erosion passes.
	DefaultIterations = 6
)

// Coord addresses a cell; both axes are zero-based.
type Coord struct {
	X, Y int
}

// MooreOffsets lists the 8 neighbor offsets around a cell.
var MooreOffsets = [8]Coord{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Grid is an immutable N×N matrix of cells, true = wall.
// Cells are stored row-major: cells[y*n+x].
type Grid struct {
	n     int
	cells []bool
}

// Observer receives each stage of a generation run: stage 0 is the random
// initialization, stage k the grid after the k-th erosion pass.
// The grid must be treated as read-only.
type Observer func(stage int, g *Grid)

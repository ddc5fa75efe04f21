// SPDX-License-Identifier: MIT

// Package cave generates cave-like 2D layouts by cellular-automaton erosion.
//
// What:
//
//   - Grid is a fixed-size square matrix of cells; true = wall, false = open.
//   - Initialize fills a Size×Size grid with independent Bernoulli trials.
//   - Step applies one synchronous erosion pass and returns a NEW grid.
//   - Generate chains Initialize and Step, reporting every stage to an Observer.
//
// Erosion rule (n = wall cells among the 8 Moore neighbors):
//
//	wall && n <  LiveThreshold  → open
//	open && n >  BornThreshold  → wall
//	otherwise                   → unchanged
//
// Survival is n ≥ LiveThreshold while birth needs n strictly above
// BornThreshold, so walls are slightly stickier than open space.
// Out-of-bounds neighbors count as open: corners see at most 3 neighbors,
// edges at most 5.
//
// Determinism:
//
//   - Step and CountWallNeighbors are pure functions of their input grid.
//   - Only Initialize consumes randomness, drawn from an explicit Source.
//     WithSeed fixes the stream; seed 0 asks for a time-derived seed.
//
// Complexity:
//
//   - Initialize: O(N²) time and memory.
//   - Step:       O(N²·8) time, O(N²) memory (one fresh grid per pass).
//   - Generate:   O(k·N²·8) time for k iterations.
//
// Concurrency:
//
//   - Grids are never mutated after construction and may be shared freely.
//   - An Engine owns its Source and is not safe for concurrent use.
//
// Errors:
//
//   - ErrEmptyGrid:  FromRows received no rows or no columns.
//   - ErrNonSquare:  FromRows rows are ragged or differ from the row count.
//   - ErrOutOfRange: At was asked for a coordinate outside the grid.
package cave

// SPDX-License-Identifier: MIT

package cave

// rule is the three-way erosion transition. live and born are kept apart so
// that the `<` (death) and `>` (birth) comparisons stay independent.
type rule struct {
	live int // wall survives when n >= live
	born int // open cell fills when n > born
}

var erosionRule = rule{live: LiveThreshold, born: BornThreshold}

// next returns the state of a cell with n wall neighbors after one pass.
// The case order matters: the wall branch is decided first.
func (r rule) next(wall bool, n int) bool {
	switch {
	case wall && n < r.live:
		return false
	case !wall && n > r.born:
		return true
	default:
		return wall
	}
}

// Initialize returns a Size×Size grid where every cell independently becomes
// a wall with probability p (wall iff src.Float64() < p). Values of p at or
// below 0 give an all-open grid, values at or above 1 an all-wall grid.
// A nil src is replaced by NewSource(0).
// Complexity: O(N²).
func Initialize(p float64, src Source) *Grid {
	if src == nil {
		src = NewSource(0)
	}
	g := newGrid(Size)
	for i := range g.cells {
		g.cells[i] = src.Float64() < p
	}
	return g
}

// Step applies one synchronous erosion pass. Every cell is decided from the
// unmodified input g; the result is a brand-new grid and g is left untouched.
// Step(nil) returns nil.
// Complexity: O(N²·8) time, O(N²) memory.
func Step(g *Grid) *Grid {
	return erode(g, erosionRule)
}

func erode(g *Grid, r rule) *Grid {
	if g == nil {
		return nil
	}
	next := newGrid(g.n)
	for y := 0; y < g.n; y++ {
		for x := 0; x < g.n; x++ {
			i := g.index(x, y)
			next.cells[i] = r.next(g.cells[i], CountWallNeighbors(g, x, y))
		}
	}
	return next
}

// Generate initializes a grid with wall probability p, then applies
// iterations erosion passes in strict sequence. observe, when non-nil, is
// called iterations+1 times: stage 0 after initialization, stage k after
// pass k. Negative iterations behave as 0. The final grid is returned.
func Generate(p float64, iterations int, src Source, observe Observer) *Grid {
	g := Initialize(p, src)
	notify(observe, 0, g)
	for k := 1; k <= iterations; k++ {
		g = Step(g)
		notify(observe, k, g)
	}
	return g
}

func notify(observe Observer, stage int, g *Grid) {
	if observe != nil {
		observe(stage, g)
	}
}

// Engine runs generations from its own randomness stream.
type Engine struct {
	cfg engineConfig
}

// NewEngine builds an Engine; see WithSeed and WithSource.
func NewEngine(opts ...Option) *Engine {
	return &Engine{cfg: newEngineConfig(opts...)}
}

// Initialize is Initialize drawing from the Engine's source.
func (e *Engine) Initialize(p float64) *Grid {
	return Initialize(p, e.cfg.src)
}

// Step is Step; it does not consume randomness.
func (e *Engine) Step(g *Grid) *Grid {
	return Step(g)
}

// Generate is Generate drawing from the Engine's source.
func (e *Engine) Generate(p float64, iterations int, observe Observer) *Grid {
	return Generate(p, iterations, e.cfg.src, observe)
}

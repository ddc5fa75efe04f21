package cave

// newGrid allocates an all-open n×n grid. Only this package writes cells, and
// only while building a grid that has not been handed out yet.
func newGrid(n int) *Grid {
	return &Grid{n: n, cells: make([]bool, n*n)}
}

// FromRows builds a grid from literal rows indexed [y][x].
// The input is deep-copied; later edits to rows do not affect the grid.
// Returns ErrEmptyGrid for no rows or no columns and ErrNonSquare when any
// row length differs from the number of rows.
// Complexity: O(N²) time and memory.
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(rows)
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}
	g := newGrid(n)
	for y, row := range rows {
		copy(g.cells[y*n:(y+1)*n], row)
	}

	return g, nil
}

// Filled returns an n×n grid with every cell set to the given state.
// n < 1 yields ErrEmptyGrid.
func Filled(n int, wall bool) (*Grid, error) {
	if n < 1 {
		return nil, ErrEmptyGrid
	}
	g := newGrid(n)
	if wall {
		for i := range g.cells {
			g.cells[i] = true
		}
	}

	return g, nil
}

// Size returns the grid dimension N.
func (g *Grid) Size() int {
	return g.n
}

// InBounds reports whether (x,y) lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.n && y >= 0 && y < g.n
}

// IsWall reports whether (x,y) is a wall. Out-of-bounds coordinates read as open.
// Complexity: O(1).
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.index(x, y)]
}

// At returns the cell at (x,y), or ErrOutOfRange.
func (g *Grid) At(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, ErrOutOfRange
	}
	return g.cells[g.index(x, y)], nil
}

// Rows returns a fresh [y][x] copy of the cells.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.n)
	for y := range rows {
		rows[y] = make([]bool, g.n)
		copy(rows[y], g.cells[y*g.n:(y+1)*g.n])
	}
	return rows
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	var walls int
	for _, c := range g.cells {
		if c {
			walls++
		}
	}
	return walls
}

// Equal reports whether both grids have the same size and cells.
// Two nil grids are equal.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.n != o.n {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// index maps (x,y) to the row-major offset y*N + x.
func (g *Grid) index(x, y int) int {
	return y*g.n + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.n, idx / g.n
}

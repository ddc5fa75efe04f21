package caverns

import (
	"fmt"

	"github.com/katalvlaran/lvcave/cave"
)

// New builds a Map over g. The grid is shared, not copied: cave grids are
// immutable. Returns ErrNilGrid for a nil grid.
// Complexity: O(1).
func New(g *cave.Grid, opts Options) (*Map, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	return &Map{
		Size:            g.Size(),
		Conn:            opts.Conn,
		grid:            g,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (m *Map) InBounds(x, y int) bool {
	return m.grid.InBounds(x, y)
}

// NeighborOffsets returns the offsets used for adjacency under m.Conn.
func (m *Map) NeighborOffsets() [][2]int {
	return m.neighborOffsets
}

// index maps (x,y) to a row‑major index: y*Size + x.
func (m *Map) index(x, y int) int {
	return y*m.Size + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (m *Map) Coordinate(idx int) (x, y int) {
	return idx % m.Size, idx / m.Size
}

// Regions finds all contiguous open areas according to m.Conn.
// Each region is a slice of row-major cell indices in BFS order; regions are
// ordered by their first cell in row-major scan.
//
// Time:   O(N²·d), where d = 4 or 8.
// Memory: O(N²) for visited flags and output.
func (m *Map) Regions() [][]int {
	seen := make([]bool, m.Size*m.Size)
	var regions [][]int

	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			if m.grid.IsWall(x, y) {
				continue
			}
			i0 := m.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect the region
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := m.Coordinate(queue[qi])
				for _, d := range m.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !m.InBounds(vx, vy) || m.grid.IsWall(vx, vy) {
						continue
					}
					vi := m.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, queue)
		}
	}
	return regions
}

// Region returns the i-th region from Regions, or ErrRegionIndex.
func (m *Map) Region(i int) ([]int, error) {
	regions := m.Regions()
	if i < 0 || i >= len(regions) {
		return nil, ErrRegionIndex
	}
	return regions[i], nil
}

// Survey counts cells and regions.
// Complexity: O(N²·d).
func (m *Map) Survey() Survey {
	walls := m.grid.WallCount()
	total := m.Size * m.Size
	s := Survey{
		Size:      m.Size,
		Walls:     walls,
		Open:      total - walls,
		WallRatio: float64(walls) / float64(total),
	}
	for _, r := range m.Regions() {
		s.Regions++
		if len(r) > s.Largest {
			s.Largest = len(r)
		}
	}
	return s
}

// String renders the survey as a single line.
func (s Survey) String() string {
	return fmt.Sprintf("%dx%d walls=%d (%.1f%%) open=%d caverns=%d largest=%d",
		s.Size, s.Size, s.Walls, s.WallRatio*100, s.Open, s.Regions, s.Largest)
}

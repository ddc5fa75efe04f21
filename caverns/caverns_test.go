package caverns_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/lvcave/cave"
	"github.com/katalvlaran/lvcave/caverns"
	"github.com/stretchr/testify/require"
)

// picture builds a grid from rows of '#' (wall) and '.' (open).
func picture(t testing.TB, lines ...string) *cave.Grid {
	t.Helper()
	rows := make([][]bool, len(lines))
	for y, line := range lines {
		rows[y] = make([]bool, len(line))
		for x, r := range line {
			rows[y][x] = r == '#'
		}
	}
	g, err := cave.FromRows(rows)
	require.NoError(t, err)
	return g
}

func newMap(t testing.TB, g *cave.Grid, conn caverns.Connectivity) *caverns.Map {
	t.Helper()
	opts := caverns.DefaultOptions()
	opts.Conn = conn
	m, err := caverns.New(g, opts)
	require.NoError(t, err)
	return m
}

func TestNew_NilGrid(t *testing.T) {
	_, err := caverns.New(nil, caverns.DefaultOptions())
	if !errors.Is(err, caverns.ErrNilGrid) {
		t.Errorf("New(nil) error = %v; want ErrNilGrid", err)
	}
}

func TestDefaultOptions(t *testing.T) {
	require.Equal(t, caverns.Conn4, caverns.DefaultOptions().Conn)
	require.Equal(t, "conn4", caverns.Conn4.String())
	require.Equal(t, "conn8", caverns.Conn8.String())
}

func TestNeighborOffsets(t *testing.T) {
	g := picture(t, "..", "..")
	require.Len(t, newMap(t, g, caverns.Conn4).NeighborOffsets(), 4)
	require.Len(t, newMap(t, g, caverns.Conn8).NeighborOffsets(), 8)
}

// TestRegions_Simple4 on a 4×4 grid with orthogonal connectivity.
//
// Grid:
//
//	# . . #
//	. . # #
//	# # . .
//	# # # #
//
// Expected: 2 caverns of sizes 4 and 2.
func TestRegions_Simple4(t *testing.T) {
	m := newMap(t, picture(t,
		"#..#",
		"..##",
		"##..",
		"####",
	), caverns.Conn4)

	regions := m.Regions()
	require.Len(t, regions, 2)

	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	require.Equal(t, []int{2, 4}, sizes)
}

// TestRegions_Diagonal: open cells touching only at corners form one region
// under Conn8 and nine under Conn4.
func TestRegions_Diagonal(t *testing.T) {
	g := picture(t,
		".###.",
		"#.#.#",
		"##.##",
		"#.#.#",
		".###.",
	)

	r8 := newMap(t, g, caverns.Conn8).Regions()
	require.Len(t, r8, 1)
	require.Len(t, r8[0], 9)

	require.Len(t, newMap(t, g, caverns.Conn4).Regions(), 9)
}

func TestRegions_AllWallAndAllOpen(t *testing.T) {
	walls, err := cave.Filled(4, true)
	require.NoError(t, err)
	require.Empty(t, newMap(t, walls, caverns.Conn4).Regions())

	open, err := cave.Filled(4, false)
	require.NoError(t, err)
	regions := newMap(t, open, caverns.Conn4).Regions()
	require.Len(t, regions, 1)
	require.Len(t, regions[0], 16)
}

// TestRegions_CoverOpenCells: every open cell appears in exactly one region.
func TestRegions_CoverOpenCells(t *testing.T) {
	g := cave.Generate(cave.DefaultWallProbability, cave.DefaultIterations, cave.NewSource(31), nil)
	m := newMap(t, g, caverns.Conn8)

	seen := make(map[int]bool)
	for _, region := range m.Regions() {
		for _, idx := range region {
			require.False(t, seen[idx], "cell %d in two regions", idx)
			seen[idx] = true
			x, y := m.Coordinate(idx)
			require.False(t, g.IsWall(x, y))
		}
	}
	require.Len(t, seen, g.Size()*g.Size()-g.WallCount())
}

func TestRegion_Index(t *testing.T) {
	m := newMap(t, picture(t, ".#", "#."), caverns.Conn4)

	r, err := m.Region(1)
	require.NoError(t, err)
	require.Equal(t, []int{3}, r)

	_, err = m.Region(2)
	require.ErrorIs(t, err, caverns.ErrRegionIndex)
	_, err = m.Region(-1)
	require.ErrorIs(t, err, caverns.ErrRegionIndex)
}

func TestSurvey(t *testing.T) {
	m := newMap(t, picture(t,
		"#..#",
		"..##",
		"##..",
		"####",
	), caverns.Conn4)

	s := m.Survey()
	require.Equal(t, caverns.Survey{
		Size:      4,
		Walls:     10,
		Open:      6,
		Regions:   2,
		Largest:   4,
		WallRatio: 10.0 / 16.0,
	}, s)
	require.Equal(t, "4x4 walls=10 (62.5%) open=6 caverns=2 largest=4", s.String())
}

// TestSurvey_LeavesGridUntouched guards the read-only contract.
func TestSurvey_LeavesGridUntouched(t *testing.T) {
	g := cave.Initialize(0.5, cave.NewSource(4))
	before := g.Rows()
	_ = newMap(t, g, caverns.Conn8).Survey()
	require.Equal(t, before, g.Rows())
}

package caverns

import (
	"errors"

	"github.com/katalvlaran/lvcave/cave"
)

// Sentinel errors for caverns operations.
var (
	// ErrNilGrid indicates New was called without a grid.
	ErrNilGrid = errors.New("caverns: grid is nil")
	// ErrRegionIndex indicates a requested region index is out of range.
	ErrRegionIndex = errors.New("caverns: region index out of range")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Options contains tunable parameters for the survey.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity between open cells.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn=Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// Map treats a cave grid as a graph of open cells. It is immutable once built.
type Map struct {
	Size            int
	Conn            Connectivity
	grid            *cave.Grid
	neighborOffsets [][2]int
}

// Survey summarizes a grid.
type Survey struct {
	Size      int     // grid dimension N
	Walls     int     // wall cells
	Open      int     // open cells
	Regions   int     // contiguous open areas under Conn
	Largest   int     // cells in the biggest open area, 0 if none
	WallRatio float64 // Walls / N²
}

package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvcave/cave"
)

const panicEmptyTile = "render: WithTiles: glyphs must be non-empty and distinct"

// Tiles holds the glyphs printed for each cell state.
type Tiles struct {
	Open string
	Wall string
}

// DefaultTiles renders air as light shade and walls as full blocks.
var DefaultTiles = Tiles{Open: "░░", Wall: "██"}

// Option customizes a Text renderer.
type Option func(*Text)

// WithTiles overrides the glyphs. Panics on empty or identical glyphs.
func WithTiles(t Tiles) Option {
	if t.Open == "" || t.Wall == "" || t.Open == t.Wall {
		panic(panicEmptyTile)
	}
	return func(r *Text) {
		r.tiles = t
	}
}

// Text writes grids to an io.Writer.
type Text struct {
	w     io.Writer
	tiles Tiles
}

// NewText returns a renderer writing to w with DefaultTiles.
func NewText(w io.Writer, opts ...Option) *Text {
	r := &Text{w: w, tiles: DefaultTiles}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tiles returns the glyphs in use.
func (r *Text) Tiles() Tiles {
	return r.tiles
}

// Render writes g row by row. Output is buffered and flushed once per grid.
// Complexity: O(N²).
func (r *Text) Render(g *cave.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	bw := bufio.NewWriter(r.w)
	writeGrid(bw, g, r.tiles)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: write grid: %w", err)
	}
	return nil
}

// Observe writes the stage header followed by the grid.
func (r *Text) Observe(stage int, g *cave.Grid) error {
	if _, err := io.WriteString(r.w, Header(stage)); err != nil {
		return fmt.Errorf("render: write header: %w", err)
	}
	return r.Render(g)
}

// Header names a generation stage: 0 is the random fill, k the k-th pass.
func Header(stage int) string {
	if stage == 0 {
		return "- First random generation:\n"
	}
	return fmt.Sprintf("- Erosion, iteration %d:\n", stage)
}

// Format returns g as a string using t. A nil grid yields "".
func Format(g *cave.Grid, t Tiles) string {
	if g == nil {
		return ""
	}
	var sb strings.Builder
	n := g.Size()
	sb.Grow(n * (n*len(t.Wall) + 1))
	writeGrid(&sb, g, t)
	return sb.String()
}

func writeGrid(w io.StringWriter, g *cave.Grid, t Tiles) {
	n := g.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if g.IsWall(x, y) {
				w.WriteString(t.Wall)
			} else {
				w.WriteString(t.Open)
			}
		}
		w.WriteString("\n")
	}
}

package render

import (
	"image"
	"image/color"

	"github.com/katalvlaran/lvcave/cave"
)

// Palette holds the colors used by Image.
type Palette struct {
	Open color.RGBA
	Wall color.RGBA
}

// DefaultPalette paints walls dark stone and open space pale sand.
var DefaultPalette = Palette{
	Open: color.RGBA{R: 0xd8, G: 0xcf, B: 0xc0, A: 0xff},
	Wall: color.RGBA{R: 0x3a, G: 0x32, B: 0x2c, A: 0xff},
}

// Image paints g into an RGBA image where each cell is a scale×scale block.
// dst is reused when it already has the right bounds, otherwise a new
// image is allocated. scale < 1 is treated as 1; a nil grid yields nil.
// Complexity: O(N²·scale²).
func Image(dst *image.RGBA, g *cave.Grid, scale int, p Palette) *image.RGBA {
	if g == nil {
		return nil
	}
	if scale < 1 {
		scale = 1
	}
	side := g.Size() * scale
	if dst == nil || dst.Rect != image.Rect(0, 0, side, side) {
		dst = image.NewRGBA(image.Rect(0, 0, side, side))
	}
	for py := 0; py < side; py++ {
		row := dst.Pix[py*dst.Stride : py*dst.Stride+side*4]
		for px := 0; px < side; px++ {
			c := p.Open
			if g.IsWall(px/scale, py/scale) {
				c = p.Wall
			}
			o := px * 4
			row[o], row[o+1], row[o+2], row[o+3] = c.R, c.G, c.B, c.A
		}
	}
	return dst
}

package render_test

import (
	"image"
	"testing"

	"github.com/katalvlaran/lvcave/cave"
	"github.com/katalvlaran/lvcave/render"
	"github.com/stretchr/testify/require"
)

func TestImage_Blocks(t *testing.T) {
	g, err := cave.FromRows([][]bool{
		{true, false},
		{false, true},
	})
	require.NoError(t, err)

	img := render.Image(nil, g, 3, render.DefaultPalette)
	require.Equal(t, image.Rect(0, 0, 6, 6), img.Bounds())

	wall, open := render.DefaultPalette.Wall, render.DefaultPalette.Open
	require.Equal(t, wall, img.RGBAAt(0, 0))
	require.Equal(t, wall, img.RGBAAt(2, 2))
	require.Equal(t, open, img.RGBAAt(3, 0))
	require.Equal(t, open, img.RGBAAt(0, 5))
	require.Equal(t, wall, img.RGBAAt(5, 5))
}

func TestImage_ReusesBuffer(t *testing.T) {
	g, err := cave.Filled(4, true)
	require.NoError(t, err)

	first := render.Image(nil, g, 2, render.DefaultPalette)
	again := render.Image(first, g, 2, render.DefaultPalette)
	require.Same(t, first, again)

	bigger := render.Image(first, g, 3, render.DefaultPalette)
	require.NotSame(t, first, bigger)
	require.Equal(t, 12, bigger.Bounds().Dx())
}

func TestImage_Edges(t *testing.T) {
	require.Nil(t, render.Image(nil, nil, 2, render.DefaultPalette))

	g, err := cave.Filled(3, false)
	require.NoError(t, err)
	img := render.Image(nil, g, 0, render.DefaultPalette)
	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, render.DefaultPalette.Open, img.RGBAAt(1, 1))
}

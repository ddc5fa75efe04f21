// Package render draws cave grids as text or pixels.
//
// Text: each cell becomes one glyph pair (Tiles.Wall or Tiles.Open), rows are
// written top to bottom with a newline after each. Text.Observe adds the
// stage header used by the console front end and matches the cave.Observer
// shape once its error is handled.
//
// Image: each cell becomes a scale×scale block of Palette color in an
// *image.RGBA, ready for screen.WritePixels in the graphical viewer.
//
// Rendering never touches the grid. Write failures are returned to the
// caller, who decides whether they are fatal.
package render

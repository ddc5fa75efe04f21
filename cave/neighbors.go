package cave

// CountWallNeighbors counts wall cells among the 8 Moore neighbors of (x,y).
// Neighbors outside the grid contribute 0, so the result is bounded by 3 on
// corners, 5 on edges and 8 in the interior. (x,y) itself must be in bounds.
// Complexity: O(1).
func CountWallNeighbors(g *Grid, x, y int) int {
	var count int
	for _, d := range MooreOffsets {
		nx, ny := x+d.X, y+d.Y
		if !g.InBounds(nx, ny) {
			continue
		}
		if g.cells[g.index(nx, ny)] {
			count++
		}
	}
	return count
}

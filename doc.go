// Package lvcave generates cave-like 2D maps with cellular-automaton erosion.
//
// What is lvcave?
//
//	A small, deterministic-per-seed toolkit for game-level layouts:
//		• cave/     Grid, neighbor counting, Initialize / Step / Generate
//		• render/   text glyphs (██ / ░░) and RGBA images of a grid
//		• settings/ wall probability and iteration count with silent defaults
//		• caverns/  read-only survey of open regions (4- or 8-connectivity)
//
// Commands:
//
//	cmd/cavegen  console generator printing every erosion stage
//	cmd/caveview ebiten window to step through the stages
//
// Quick picture of one erosion pass on a 5×5 block with a hole:
//
//	#####      .###.
//	#####      #####
//	##.##  →   #####
//	#####      #####
//	#####      .###.
//
// The hole has 8 wall neighbors and fills in; corners see only 3 and erode.
//
//	go get github.com/katalvlaran/lvcave
package lvcave

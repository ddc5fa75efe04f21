// Command caveview shows a cave generation in a window.
//
// Keys:
//
//	→ / Space   next stage
//	←           previous stage
//	R           new cave with a fresh seed
//	Esc / Q     quit
package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/katalvlaran/lvcave/cave"
	"github.com/katalvlaran/lvcave/caverns"
	"github.com/katalvlaran/lvcave/render"
	"github.com/katalvlaran/lvcave/settings"
)

const cellPx = 12

var (
	wallFlag  = flag.String("wall", "", "wall fill probability in ]0;1[ (default 0.7)")
	itersFlag = flag.String("iterations", "", "erosion passes (default 6)")
	seedFlag  = flag.Uint64("seed", 0, "random seed, 0 for a time-derived one")
)

// Viewer holds every stage of one run so the user can step through them.
type Viewer struct {
	cfg     settings.Settings
	engine  *cave.Engine
	stages  []*cave.Grid
	current int
	frame   *image.RGBA
	dirty   bool
	survey  string
}

func newViewer(cfg settings.Settings, seed uint64) *Viewer {
	v := &Viewer{cfg: cfg, engine: cave.NewEngine(cave.WithSeed(seed))}
	v.regenerate()
	return v
}

func (v *Viewer) regenerate() {
	v.stages = v.stages[:0]
	v.engine.Generate(v.cfg.WallProbability, v.cfg.Iterations, func(_ int, g *cave.Grid) {
		v.stages = append(v.stages, g)
	})
	v.show(0)
}

func (v *Viewer) show(stage int) {
	if stage < 0 || stage >= len(v.stages) {
		return
	}
	v.current = stage
	v.dirty = true
	m, err := caverns.New(v.stages[stage], caverns.DefaultOptions())
	if err != nil {
		v.survey = err.Error()
		return
	}
	v.survey = m.Survey().String()
}

func (v *Viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.show(v.current + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.show(v.current - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.engine = cave.NewEngine()
		v.regenerate()
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.dirty {
		v.frame = render.Image(v.frame, v.stages[v.current], cellPx, render.DefaultPalette)
		v.dirty = false
	}
	screen.WritePixels(v.frame.Pix)

	label := "random fill"
	if v.current > 0 {
		label = fmt.Sprintf("erosion %d/%d", v.current, len(v.stages)-1)
	}
	ebitenutil.DebugPrint(screen, label+"\n"+v.survey)
}

func (v *Viewer) Layout(_, _ int) (int, int) {
	side := cave.Size * cellPx
	return side, side
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("caveview: ")
	flag.Parse()

	cfg := settings.Parse(*wallFlag, *itersFlag)
	side := cave.Size * cellPx
	ebiten.SetWindowSize(side, side)
	ebiten.SetWindowTitle("lvcave")
	if err := ebiten.RunGame(newViewer(cfg, *seedFlag)); err != nil {
		log.Fatal(err)
	}
}

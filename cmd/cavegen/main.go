// Command cavegen generates a cave layout on the console.
//
// It asks for the wall fill probability and the number of erosion passes
// (blank or invalid answers fall back to 0.7 and 6), prints the grid after
// the random fill and after every pass, surveys the result and waits for
// Enter before exiting.
//
// Usage:
//
//	cavegen [-wall 0.45] [-iterations 4] [-seed 7] [-quiet] [-conn8] [-no-pause]
//
// Values given as flags are not asked for.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/lvcave/cave"
	"github.com/katalvlaran/lvcave/caverns"
	"github.com/katalvlaran/lvcave/render"
	"github.com/katalvlaran/lvcave/settings"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cavegen: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// options are the parsed command-line flags.
type options struct {
	wall       string
	iterations string
	seed       uint64
	quiet      bool
	conn8      bool
	noPause    bool
}

func parseFlags(args []string, out io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("cavegen", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&o.wall, "wall", "", "wall fill probability in ]0;1[ (asked for when empty)")
	fs.StringVar(&o.iterations, "iterations", "", "erosion passes (asked for when empty)")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed, 0 for a time-derived one")
	fs.BoolVar(&o.quiet, "quiet", false, "print only the final grid")
	fs.BoolVar(&o.conn8, "conn8", false, "count caverns with diagonal connectivity")
	fs.BoolVar(&o.noPause, "no-pause", false, "exit without waiting for Enter")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}

// resolve turns flags and prompt answers into settings. Only empty flags are
// asked for; anything unparsable becomes the default.
func resolve(o options, p *settings.Prompter, out io.Writer) (settings.Settings, error) {
	if o.wall != "" && o.iterations != "" {
		return settings.Parse(o.wall, o.iterations), nil
	}
	if _, err := io.WriteString(out, "## Please enter config (choices) [default]... \n"); err != nil {
		return settings.Settings{}, fmt.Errorf("write banner: %w", err)
	}
	s := settings.Parse(o.wall, o.iterations)
	var err error
	if o.wall == "" {
		if s.WallProbability, err = p.WallProbability(); err != nil {
			return settings.Settings{}, err
		}
	}
	if o.iterations == "" {
		if s.Iterations, err = p.Iterations(); err != nil {
			return settings.Settings{}, err
		}
	}
	return s, nil
}

func run(args []string, in io.Reader, out io.Writer) error {
	o, err := parseFlags(args, out)
	if err != nil {
		return err
	}
	prompter := settings.NewPrompter(in, out)
	text := render.NewText(out)

	fmt.Fprintln(out, "# Linear cave finder and indexer.")
	cfg, err := resolve(o, prompter, out)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "# Input received; generating grid")
	tiles := text.Tiles()
	fmt.Fprintf(out, "## Initialized grid with: air='%s'; wall='%s'.\n", tiles.Open, tiles.Wall)

	var renderErr error
	observe := func(stage int, g *cave.Grid) {
		if renderErr != nil || o.quiet {
			return
		}
		renderErr = text.Observe(stage, g)
	}
	engine := cave.NewEngine(cave.WithSeed(o.seed))
	grid := engine.Generate(cfg.WallProbability, cfg.Iterations, observe)
	if renderErr != nil {
		return renderErr
	}
	if o.quiet {
		if err := text.Render(grid); err != nil {
			return err
		}
	}

	survey := caverns.DefaultOptions()
	if o.conn8 {
		survey.Conn = caverns.Conn8
	}
	m, err := caverns.New(grid, survey)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "## Survey: %s\n", m.Survey()); err != nil {
		return fmt.Errorf("write survey: %w", err)
	}

	if o.noPause {
		return nil
	}
	return prompter.WaitForEnter()
}

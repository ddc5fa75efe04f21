package settings

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvcave/cave"
)

// Prompter asks questions on out and reads one line per answer from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter wraps in with a buffered reader.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask writes question and returns the next input line without its line
// terminator. At end of input the partial line (possibly "") is returned
// with a nil error.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", fmt.Errorf("settings: write prompt: %w", err)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("settings: read answer: %w", err)
	}
	return line, nil
}

// WallProbability asks for the wall fill ratio.
func (p *Prompter) WallProbability() (float64, error) {
	raw, err := p.Ask(fmt.Sprintf("- Wall fill (]0; 1[) [%v]: \n", cave.DefaultWallProbability))
	if err != nil {
		return 0, err
	}
	return ParseWallProbability(raw), nil
}

// Iterations asks for the number of erosion passes.
func (p *Prompter) Iterations() (int, error) {
	raw, err := p.Ask(fmt.Sprintf("- Erosion iterations (int > 0) [%d]\n", cave.DefaultIterations))
	if err != nil {
		return 0, err
	}
	return ParseIterations(raw), nil
}

// Read prints the config banner and asks both questions in order.
func (p *Prompter) Read() (Settings, error) {
	if _, err := io.WriteString(p.out, "## Please enter config (choices) [default]... \n"); err != nil {
		return Settings{}, fmt.Errorf("settings: write banner: %w", err)
	}
	prob, err := p.WallProbability()
	if err != nil {
		return Settings{}, err
	}
	iters, err := p.Iterations()
	if err != nil {
		return Settings{}, err
	}
	return Settings{WallProbability: prob, Iterations: iters}, nil
}

// WaitForEnter blocks until a line (or end of input) arrives.
func (p *Prompter) WaitForEnter() error {
	_, err := p.Ask("Enter to close...\n")
	return err
}

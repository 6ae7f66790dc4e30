// Package interaction collects route and parameter names from the user.
// Commands depend on the Prompter interface; the concrete prompter is a huh
// TUI input on terminals, a plain line reader otherwise, optionally fronted
// by answers given on the command line.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled by user")

// ValidateFunc checks a candidate answer. A nil ValidateFunc accepts anything.
type ValidateFunc func(string) error

// Prompter asks the user for a single line of input. Returning an empty
// string or ErrCancelled means the user backed out.
type Prompter interface {
	Input(title, placeholder string, validate ValidateFunc) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Prompt modes understood by New.
const (
	ModeAuto = "auto"
	ModeTUI  = "tui"
	ModeLine = "line"
)

// New returns the prompter for mode. "auto" picks the TUI when in is a
// terminal and the line prompter otherwise.
func New(mode string, in io.Reader, out io.Writer) Prompter {
	switch mode {
	case ModeTUI:
		return HuhPrompter{}
	case ModeLine:
		return NewLinePrompter(in, out)
	}
	if f, ok := in.(*os.File); ok && IsTerminal(f) {
		return HuhPrompter{}
	}
	return NewLinePrompter(in, out)
}

// LinePrompter reads answers line by line. Invalid answers are reported on
// Out and asked again, up to MaxAttempts times.
type LinePrompter struct {
	In          *bufio.Reader
	Out         io.Writer
	MaxAttempts int
}

// NewLinePrompter creates a LinePrompter over in/out allowing three attempts.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &LinePrompter{In: bufio.NewReader(in), Out: out, MaxAttempts: 3}
}

func (p *LinePrompter) Input(title, placeholder string, validate ValidateFunc) (string, error) {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if placeholder != "" {
			fmt.Fprintf(p.Out, "%s (e.g. %s): ", title, placeholder)
		} else {
			fmt.Fprintf(p.Out, "%s: ", title)
		}

		line, err := p.In.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		answer := strings.TrimRight(line, "\r\n")
		if answer == "" {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(p.Out)
				return "", ErrCancelled
			}
			return "", nil
		}

		if validate == nil {
			return answer, nil
		}
		if lastErr = validate(answer); lastErr == nil {
			return answer, nil
		}
		fmt.Fprintf(p.Out, "  %v\n", lastErr)
		if errors.Is(err, io.EOF) {
			break
		}
	}
	return "", lastErr
}

// PresetPrompter answers prompts from a fixed list, in order, then defers
// to Fallback. Preset answers are returned unvalidated.
type PresetPrompter struct {
	Answers  []string
	Fallback Prompter
}

func (p *PresetPrompter) Input(title, placeholder string, validate ValidateFunc) (string, error) {
	if len(p.Answers) > 0 {
		answer := p.Answers[0]
		p.Answers = p.Answers[1:]
		return answer, nil
	}
	if p.Fallback == nil {
		return "", ErrCancelled
	}
	return p.Fallback.Input(title, placeholder, validate)
}

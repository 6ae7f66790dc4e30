// Package ui renders user feedback: success and info lines on stdout,
// warnings and errors on stderr. Styling comes from lipgloss and degrades to
// plain text when the writer is not a color terminal.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out io.Writer
	Err io.Writer

	ok    lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	faint lipgloss.Style
	key   lipgloss.Style
}

// New creates a Console writing regular output to out and diagnostics to errOut.
func New(out, errOut io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	ro := lipgloss.NewRenderer(out)
	re := lipgloss.NewRenderer(errOut)
	return &Console{
		Out:   out,
		Err:   errOut,
		ok:    ro.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		key:   ro.NewStyle().Foreground(lipgloss.Color("6")),
		warn:  re.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		fail:  re.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		faint: re.NewStyle().Faint(true),
	}
}

// Success prints a success message with a checkmark.
func (c *Console) Success(format string, args ...any) {
	fmt.Fprintf(c.Out, "%s %s\n", c.ok.Render("✓"), fmt.Sprintf(format, args...))
}

// Info prints an indented informational line.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintf(c.Out, "  %s\n", fmt.Sprintf(format, args...))
}

// Item prints a key-value line.
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "  %s %v\n", c.key.Render(fmt.Sprintf("%-24s", key+":")), value)
}

// Warn prints a warning to the error stream.
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintf(c.Err, "%s %s\n", c.warn.Render("⚠"), fmt.Sprintf(format, args...))
}

// Error prints an error to the error stream, followed by an optional hint.
func (c *Console) Error(msg, hint string) {
	fmt.Fprintf(c.Err, "%s %s\n", c.fail.Render("✗"), msg)
	if hint != "" {
		fmt.Fprintf(c.Err, "  %s\n", c.faint.Render("hint: "+hint))
	}
}

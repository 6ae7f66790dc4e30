package interaction

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

var runInputPrompt = func(title, placeholder string, validate func(string) error, input *string) error {
	field := huh.NewInput().
		Title(title).
		Validate(validate).
		Value(input)
	if placeholder != "" {
		field.Placeholder(placeholder)
	}
	return field.Run()
}

// HuhPrompter implements Prompter with the huh TUI library. Esc/Ctrl-C
// cancel; an empty submission also counts as cancellation.
type HuhPrompter struct{}

func (HuhPrompter) Input(title, placeholder string, validate ValidateFunc) (string, error) {
	check := func(s string) error {
		if s == "" || validate == nil {
			return nil
		}
		return validate(s)
	}

	var input string
	if err := runInputPrompt(title, placeholder, check, &input); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("prompt input: %w", err)
	}
	return input, nil
}

package interaction

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoDigits = errors.New("no digits please")

func noDigits(s string) error {
	if strings.ContainsAny(s, "0123456789") {
		return errNoDigits
	}
	return nil
}

func TestLinePrompter(t *testing.T) {
	t.Run("accepts valid answer", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("userId\r\n"), &out)
		got, err := p.Input("Parameter name", "serviceId", noDigits)
		require.NoError(t, err)
		assert.Equal(t, "userId", got)
		assert.Contains(t, out.String(), "Parameter name (e.g. serviceId): ")
	})

	t.Run("re-prompts after invalid answer", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("id1\nid\n"), &out)
		got, err := p.Input("Parameter name", "", noDigits)
		require.NoError(t, err)
		assert.Equal(t, "id", got)
		assert.Contains(t, out.String(), "no digits please")
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("a1\nb2\nc3\nd\n"), &bytes.Buffer{})
		_, err := p.Input("Parameter name", "", noDigits)
		assert.ErrorIs(t, err, errNoDigits)
	})

	t.Run("keeps surrounding whitespace", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader(" service/view \n"), &bytes.Buffer{})
		got, err := p.Input("Route name", "", nil)
		require.NoError(t, err)
		assert.Equal(t, " service/view ", got)
	})

	t.Run("blank line cancels", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("\n"), &bytes.Buffer{})
		got, err := p.Input("Route name", "", nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("eof cancels", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader(""), &bytes.Buffer{})
		_, err := p.Input("Route name", "", nil)
		assert.ErrorIs(t, err, ErrCancelled)
	})

	t.Run("last line without newline", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("service/view"), &bytes.Buffer{})
		got, err := p.Input("Route name", "", nil)
		require.NoError(t, err)
		assert.Equal(t, "service/view", got)
	})
}

func TestPresetPrompter(t *testing.T) {
	fallback := NewLinePrompter(strings.NewReader("fromStdin\n"), &bytes.Buffer{})
	p := &PresetPrompter{Answers: []string{"users", "id1"}, Fallback: fallback}

	first, err := p.Input("Route name", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "users", first)

	// Presets skip validation; the caller validates them without retry.
	second, err := p.Input("Parameter name", "", noDigits)
	require.NoError(t, err)
	assert.Equal(t, "id1", second)
	assert.Empty(t, p.Answers)

	third, err := p.Input("Anything", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "fromStdin", third)

	empty := &PresetPrompter{}
	_, err = empty.Input("Route name", "", nil)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestHuhPrompter(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })

	t.Run("returns value", func(t *testing.T) {
		runInputPrompt = func(title, placeholder string, validate func(string) error, input *string) error {
			assert.Equal(t, "Route name", title)
			assert.NoError(t, validate(""), "empty input must be accepted as cancellation")
			assert.ErrorIs(t, validate("a1"), errNoDigits)
			*input = "service/view"
			return nil
		}
		got, err := HuhPrompter{}.Input("Route name", "service/view", noDigits)
		require.NoError(t, err)
		assert.Equal(t, "service/view", got)
	})

	t.Run("abort maps to cancellation", func(t *testing.T) {
		runInputPrompt = func(string, string, func(string) error, *string) error {
			return huh.ErrUserAborted
		}
		_, err := HuhPrompter{}.Input("Route name", "", nil)
		assert.ErrorIs(t, err, ErrCancelled)
	})
}

func TestNewPicksLinePrompterForPipes(t *testing.T) {
	p := New(ModeAuto, strings.NewReader(""), &bytes.Buffer{})
	_, ok := p.(*LinePrompter)
	assert.True(t, ok)

	_, ok = New(ModeTUI, nil, nil).(HuhPrompter)
	assert.True(t, ok)
}

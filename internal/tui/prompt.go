package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user quits a prompt.
var ErrAborted = errors.New("prompt aborted")

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	// Line asks for a single line of input. validate is run on every
	// submission; a non-nil error keeps the prompt open.
	Line(title, placeholder string, validate func(string) error) (string, error)
}

// TUIPrompter implements Prompter with huh forms.
type TUIPrompter struct{}

// NewPrompter creates a new TUIPrompter.
func NewPrompter() Prompter {
	return &TUIPrompter{}
}

// Line shows a single-line input prompt.
func (p *TUIPrompter) Line(title, placeholder string, validate func(string) error) (string, error) {
	var line string
	if err := newLineForm(title, placeholder, &line, validate).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func newLineForm(title, placeholder string, value *string, validate func(string) error) *huh.Form {
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value)
	if validate != nil {
		input = input.Validate(func(s string) error {
			return validate(strings.TrimSpace(s))
		})
	}

	return huh.NewForm(huh.NewGroup(input)).
		WithTheme(currentThemeOrDefault()).
		WithKeyMap(keyMap()).
		WithShowHelp(true)
}

// keyMap extends the huh defaults so esc also quits.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	)
	return km
}

package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DefaultTheme is the theme used when none is configured.
const DefaultTheme = "entryline"

// ValidThemes is the list of supported theme names.
var ValidThemes = []string{
	"entryline",
	"base",
	"base16",
	"catppuccin",
	"charm",
	"dracula",
}

var (
	accent      = lipgloss.AdaptiveColor{Light: "#0369a1", Dark: "#38bdf8"}
	textNormal  = lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"}
	textMuted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	errorColor  = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}
	borderColor = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#475569"}
)

// IsValidTheme returns true if the given theme name is valid.
func IsValidTheme(name string) bool {
	return slices.Contains(ValidThemes, name)
}

// GetTheme returns the huh.Theme for the given theme name.
// Returns nil if the theme name is not recognized.
func GetTheme(name string) *huh.Theme {
	switch name {
	case "entryline":
		return entrylineTheme()
	case "base":
		return huh.ThemeBase()
	case "base16":
		return huh.ThemeBase16()
	case "catppuccin":
		return huh.ThemeCatppuccin()
	case "charm":
		return huh.ThemeCharm()
	case "dracula":
		return huh.ThemeDracula()
	default:
		return nil
	}
}

func entrylineTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(accent)
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(textMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errorColor)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errorColor)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(textNormal)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(textMuted)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(accent)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderForeground(borderColor)

	return t
}

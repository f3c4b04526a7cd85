package tui

import (
	"github.com/charmbracelet/huh"
)

// currentTheme holds the configured theme for prompts.
// When nil, currentThemeOrDefault() returns the entryline theme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// Unknown or empty names fall back to the entryline theme.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return entrylineTheme()
	}
	return currentTheme
}

// resetTheme resets the current theme to the default. Used by tests.
func resetTheme() {
	currentTheme = nil
}

package tui

import (
	"github.com/charmbracelet/huh"
)

// currentTheme holds the theme for prompts; nil selects the charm theme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name. Unknown or empty names reset
// to the default.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return huh.ThemeCharm()
	}
	return currentTheme
}

package domain

import "strings"

// Theme is the visitor's colour scheme preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeKey is the single persistent key the preference is stored under
const ThemeKey = "theme"

// ParseTheme returns the theme for s, or fallback when s is not a known theme
func ParseTheme(s string, fallback Theme) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	}
	return fallback
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

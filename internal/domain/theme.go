package domain

import "strings"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(raw string) (Theme, bool) {
	theme := Theme(strings.ToLower(strings.TrimSpace(raw)))
	switch theme {
	case ThemeLight, ThemeDark:
		return theme, true
	default:
		return "", false
	}
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}

	return ThemeDark
}

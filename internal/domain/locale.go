package domain

import (
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	LocaleIndonesian Locale = "id"
	LocaleEnglish    Locale = "en"

	DefaultLocale = LocaleIndonesian
)

// SupportedLocales lists the primary locale first.
func SupportedLocales() []Locale {
	return []Locale{LocaleIndonesian, LocaleEnglish}
}

func ParseLocale(raw string) (Locale, bool) {
	locale := Locale(strings.TrimSpace(raw))
	if !locale.Valid() {
		return "", false
	}

	return locale, true
}

func (l Locale) Valid() bool {
	switch l {
	case LocaleIndonesian, LocaleEnglish:
		return true
	default:
		return false
	}
}

// Other returns the opposite supported locale. Invalid values flip to the default.
func (l Locale) Other() Locale {
	if l == LocaleIndonesian {
		return LocaleEnglish
	}

	return LocaleIndonesian
}

func (l Locale) Tag() language.Tag {
	switch l {
	case LocaleEnglish:
		return language.English
	default:
		return language.Indonesian
	}
}

// SelfName is the locale's own name for itself.
func (l Locale) SelfName() string {
	switch l {
	case LocaleEnglish:
		return "English"
	default:
		return "Bahasa Indonesia"
	}
}

package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestUserApplyChangesOnlyProvidedFields(t *testing.T) {
	createdAt := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	user := User{Name: "Ilham", Email: "user@gamelan.com", CreatedAt: createdAt}

	name := "X"
	got := user.Apply(UserUpdate{Name: &name})

	assert.Equal(t, User{Name: "X", Email: "user@gamelan.com", CreatedAt: createdAt}, got)
	assert.Equal(t, "Ilham", user.Name)
}

func TestUserComplete(t *testing.T) {
	createdAt := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	assert.True(t, User{Name: "A", Email: "a@b.c", CreatedAt: createdAt}.Complete())
	assert.False(t, User{Name: "A", Email: "a@b.c"}.Complete())
	assert.False(t, User{Email: "a@b.c", CreatedAt: createdAt}.Complete())
}

func TestUserMissingField(t *testing.T) {
	createdAt := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	assert.Equal(t, "", User{Name: "A", Email: "a@b.c", CreatedAt: createdAt}.MissingField())
	assert.Equal(t, "name", User{Email: "a@b.c", CreatedAt: createdAt}.MissingField())
	assert.Equal(t, "email", User{Name: "A", CreatedAt: createdAt}.MissingField())
	assert.Equal(t, "createdAt", User{Name: "A", Email: "a@b.c"}.MissingField())
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Locale
		ok   bool
	}{
		{name: "indonesian", raw: "id", want: LocaleIndonesian, ok: true},
		{name: "english with spaces", raw: " en ", want: LocaleEnglish, ok: true},
		{name: "unsupported", raw: "fr", ok: false},
		{name: "case sensitive", raw: "EN", ok: false},
		{name: "empty", raw: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLocale(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocaleOtherAndTag(t *testing.T) {
	assert.Equal(t, LocaleEnglish, LocaleIndonesian.Other())
	assert.Equal(t, LocaleIndonesian, LocaleEnglish.Other())
	assert.Equal(t, language.Indonesian, LocaleIndonesian.Tag())
	assert.Equal(t, language.English, LocaleEnglish.Tag())
	assert.Equal(t, LocaleIndonesian, SupportedLocales()[0])
}

func TestThemeParseAndToggle(t *testing.T) {
	theme, ok := ParseTheme("Dark")
	require.True(t, ok)
	assert.Equal(t, ThemeDark, theme)
	assert.Equal(t, ThemeLight, theme.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())

	_, ok = ParseTheme("sepia")
	assert.False(t, ok)
}

func TestValidationErrorMatchesSentinel(t *testing.T) {
	var err error = &ValidationError{Kind: ValidationWeakPassword, Field: "password", Message: "Password minimal 6 karakter"}

	assert.True(t, errors.Is(err, ErrWeakPassword))
	assert.False(t, errors.Is(err, ErrEmptyField))
	assert.Equal(t, "Password minimal 6 karakter", err.Error())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "password", validationErr.Field)
}

func TestValidationErrorWithoutMessageFallsBackToSentinelText(t *testing.T) {
	err := &ValidationError{Kind: ValidationInvalidEmail}
	assert.Equal(t, ErrInvalidEmail.Error(), err.Error())
}

package screen

import (
	"testing"
	"time"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options(locale domain.Locale, theme domain.Theme) Options {
	return Options{Table: i18n.Default().Table(locale), Theme: theme}
}

func price(v int64) *int64 {
	return &v
}

func TestRenderCatalog(t *testing.T) {
	output, err := Catalog(options(domain.LocaleIndonesian, domain.ThemeLight), []domain.Destination{
		{ID: "KRT-01", Name: "Bangsal Sri Manganti", Description: "Pertunjukan", Hours: "08:30 - 14:00", Price: price(15000)},
		{ID: "KRT-04", Name: "Sitihinggil Lor", Description: "Balairung", Hours: "08:00 - 13:00"},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Koleksi Wisata Gamelan")
	assert.Contains(t, output, "KRT-01")
	assert.Contains(t, output, "Bangsal Sri Manganti")
	assert.Contains(t, output, "Rp 15.000")
	assert.Contains(t, output, "Gratis")
}

func TestRenderCatalogEmpty(t *testing.T) {
	output, err := Catalog(options(domain.LocaleEnglish, domain.ThemeDark), nil)

	require.NoError(t, err)
	assert.Contains(t, output, "Gamelan Tourism Collection")
	assert.Contains(t, output, "No destinations found")
}

func TestRenderDestination(t *testing.T) {
	output, err := Destination(options(domain.LocaleEnglish, domain.ThemeLight), domain.Destination{
		ID:              "KRT-02",
		Name:            "Museum Gamelan",
		Description:     "Heirloom sets",
		Location:        "Kraton",
		Hours:           "08:00 - 14:00",
		HistoricalValue: "Old",
		Price:           price(15000),
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Museum Gamelan")
	assert.Contains(t, output, "Location: Kraton")
	assert.Contains(t, output, "Rp 15,000")
	assert.Contains(t, output, "gamelan consult KRT-02")
}

func TestRenderProfile(t *testing.T) {
	output, err := Profile(options(domain.LocaleIndonesian, domain.ThemeLight), ProfileData{
		User: domain.User{
			Name:      "Ilham",
			Email:     "user@gamelan.com",
			CreatedAt: time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
		},
		Consultations: 3,
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Ilham")
	assert.Contains(t, output, "user@gamelan.com")
	assert.Contains(t, output, "Member sejak: 9 Maret 2026")
	assert.Contains(t, output, "Total Konsultasi: 3")
}

func TestRenderSettings(t *testing.T) {
	output, err := Settings(options(domain.LocaleIndonesian, domain.ThemeDark), SettingsData{
		Theme:              domain.ThemeDark,
		Locale:             domain.LocaleIndonesian,
		EmailNotifications: false,
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Mode Gelap: Aktif")
	assert.Contains(t, output, "Bahasa Indonesia")
	assert.Contains(t, output, "Notifikasi Email: Nonaktif")
}

func TestRenderHistory(t *testing.T) {
	opts := options(domain.LocaleEnglish, domain.ThemeLight)

	empty, err := History(opts, nil)
	require.NoError(t, err)
	assert.Contains(t, empty, "No consultations yet")

	output, err := History(opts, []HistoryEntry{
		{
			Consultation: domain.Consultation{ID: "c-1", DestinationID: "KRT-03", CreatedAt: time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)},
			Destination:  domain.Destination{ID: "KRT-03", Name: "Bangsal Pagelaran"},
		},
		{
			Consultation: domain.Consultation{ID: "c-2", DestinationID: "KRT-99", CreatedAt: time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, output, "March 9, 2026")
	assert.Contains(t, output, "Bangsal Pagelaran")
	assert.Contains(t, output, "KRT-99")
}

func TestFormatDate(t *testing.T) {
	at := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "1 Desember 2025", FormatDate(domain.LocaleIndonesian, at))
	assert.Equal(t, "December 1, 2025", FormatDate(domain.LocaleEnglish, at))
	assert.Equal(t, "-", FormatDate(domain.LocaleEnglish, time.Time{}))
}

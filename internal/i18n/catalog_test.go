package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTablesDefineIdenticalKeySets(t *testing.T) {
	bundle, err := LoadEmbedded()
	require.NoError(t, err)

	primary := bundle.Table(domain.LocaleIndonesian)
	secondary := bundle.Table(domain.LocaleEnglish)

	assert.Equal(t, AllKeys(), primary.Keys())
	assert.Equal(t, primary.Keys(), secondary.Keys())
}

func TestTableTextReturnsLocalizedMessage(t *testing.T) {
	bundle := Default()

	assert.Equal(t, "Beranda", bundle.Table(domain.LocaleIndonesian).Text(NavHome))
	assert.Equal(t, "Home", bundle.Table(domain.LocaleEnglish).Text(NavHome))
	assert.Equal(t, "Password minimal 6 karakter", bundle.Table(domain.LocaleIndonesian).Text(ErrWeakPassword))
}

func TestBundleTableFallsBackToDefaultLocale(t *testing.T) {
	table := Default().Table(domain.Locale("fr"))
	assert.Equal(t, domain.DefaultLocale, table.Locale())
}

func TestFormatRupiahUsesLocaleGrouping(t *testing.T) {
	bundle := Default()

	assert.Equal(t, "Rp 15.000", bundle.Table(domain.LocaleIndonesian).FormatRupiah(15000))
	assert.Equal(t, "Rp 15,000", bundle.Table(domain.LocaleEnglish).FormatRupiah(15000))
}

func TestLoadFromFSRejectsMissingKey(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/id.toml": {Data: []byte("locale = \"id\"\n\n[messages]\nnavHome = \"Beranda\"\n")},
		"locales/en.toml": {Data: []byte("locale = \"en\"\n\n[messages]\nnavHome = \"Home\"\n")},
	}

	_, err := LoadFromFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing message keys")
}

func TestLoadFromFSRejectsUnknownKey(t *testing.T) {
	data, err := embeddedLocalesFS.ReadFile("locales/id.toml")
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"locales/id.toml": {Data: append(data, []byte("extraKey = \"x\"\n")...)},
	}

	_, err = LoadFromFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown message key \"extraKey\"")
}

func TestLoadFromFSRequiresEverySupportedLocale(t *testing.T) {
	data, err := embeddedLocalesFS.ReadFile("locales/id.toml")
	require.NoError(t, err)

	_, err = LoadFromFS(fstest.MapFS{"locales/id.toml": {Data: data}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no catalog for locale \"en\"")
}

func TestLoadFromFSRejectsLocaleFileNameMismatch(t *testing.T) {
	data, err := embeddedLocalesFS.ReadFile("locales/id.toml")
	require.NoError(t, err)

	_, err = LoadFromFS(fstest.MapFS{"locales/en.toml": {Data: data}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must match file name")
}

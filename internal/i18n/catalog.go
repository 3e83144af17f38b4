// Package i18n holds the translation tables for every supported locale.
// Tables are embedded TOML files validated at load time so that each locale
// defines exactly the keys in AllKeys.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/gamelan-harmony/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/text/message"
)

//go:embed locales/*.toml
var embeddedLocalesFS embed.FS

type catalogFile struct {
	Locale   string            `toml:"locale"`
	Messages map[string]string `toml:"messages"`
}

// Table is the immutable message table of one locale.
type Table struct {
	locale   domain.Locale
	messages map[MessageKey]string
}

type Bundle struct {
	tables map[domain.Locale]*Table
}

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
)

// Default returns the embedded bundle. The embedded catalogs are part of the
// binary, so a load failure is a build defect and panics.
func Default() *Bundle {
	defaultOnce.Do(func() {
		bundle, err := LoadEmbedded()
		if err != nil {
			panic(err)
		}
		defaultBundle = bundle
	})

	return defaultBundle
}

func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedLocalesFS)
}

func LoadFromFS(localesFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(localesFS, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	sort.Strings(paths)

	bundle := &Bundle{tables: map[domain.Locale]*Table{}}
	for _, p := range paths {
		data, err := fs.ReadFile(localesFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}

		var file catalogFile
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("decode catalog %s: %w", p, err)
		}

		table, err := newTable(p, file)
		if err != nil {
			return nil, err
		}
		if _, exists := bundle.tables[table.locale]; exists {
			return nil, fmt.Errorf("catalog %s: locale %q defined twice", p, table.locale)
		}
		bundle.tables[table.locale] = table
	}

	for _, locale := range domain.SupportedLocales() {
		if _, ok := bundle.tables[locale]; !ok {
			return nil, fmt.Errorf("no catalog for locale %q", locale)
		}
	}

	return bundle, nil
}

func newTable(p string, file catalogFile) (*Table, error) {
	locale, ok := domain.ParseLocale(file.Locale)
	if !ok {
		return nil, fmt.Errorf("catalog %s: unsupported locale %q", p, file.Locale)
	}
	if fromPath := strings.TrimSuffix(path.Base(p), path.Ext(p)); fromPath != string(locale) {
		return nil, fmt.Errorf("catalog %s: locale %q must match file name %q", p, locale, fromPath)
	}

	known := make(map[MessageKey]struct{}, len(AllKeys()))
	for _, key := range AllKeys() {
		known[key] = struct{}{}
	}

	messages := make(map[MessageKey]string, len(file.Messages))
	for raw, text := range file.Messages {
		key := MessageKey(raw)
		if _, ok := known[key]; !ok {
			return nil, fmt.Errorf("catalog %s: unknown message key %q", p, raw)
		}
		messages[key] = text
	}

	var missing []string
	for _, key := range AllKeys() {
		if strings.TrimSpace(messages[key]) == "" {
			missing = append(missing, string(key))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("catalog %s: missing message keys: %s", p, strings.Join(missing, ", "))
	}

	return &Table{locale: locale, messages: messages}, nil
}

// Table returns the table for locale, falling back to the default locale for
// unsupported values.
func (b *Bundle) Table(locale domain.Locale) *Table {
	if table, ok := b.tables[locale]; ok {
		return table
	}

	return b.tables[domain.DefaultLocale]
}

func (t *Table) Locale() domain.Locale {
	return t.locale
}

func (t *Table) Text(key MessageKey) string {
	if text, ok := t.messages[key]; ok {
		return text
	}

	return string(key)
}

// Keys returns the table's message keys in AllKeys order.
func (t *Table) Keys() []MessageKey {
	keys := make([]MessageKey, 0, len(t.messages))
	for _, key := range AllKeys() {
		if _, ok := t.messages[key]; ok {
			keys = append(keys, key)
		}
	}

	return keys
}

func (t *Table) Printer() *message.Printer {
	return message.NewPrinter(t.locale.Tag())
}

// FormatRupiah formats a whole-rupiah amount with the locale's digit grouping.
func (t *Table) FormatRupiah(amount int64) string {
	return t.Printer().Sprintf("Rp %d", amount)
}

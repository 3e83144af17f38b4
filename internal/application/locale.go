package application

import (
	"context"
	"sync"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/i18n"
	"github.com/bnema/gamelan-harmony/internal/observability"
	"github.com/bnema/gamelan-harmony/internal/prefs"
	"go.uber.org/zap"
)

// Messages resolves UI strings in the active locale.
type Messages interface {
	Text(key i18n.MessageKey) string
}

type LocaleManager struct {
	mu     sync.RWMutex
	store  *prefs.Store
	bundle *i18n.Bundle
	logger *zap.Logger
	locale domain.Locale
}

var _ Messages = (*LocaleManager)(nil)

func NewLocaleManager(store *prefs.Store, bundle *i18n.Bundle, logger *zap.Logger) *LocaleManager {
	if bundle == nil {
		bundle = i18n.Default()
	}

	return &LocaleManager{
		store:  store,
		bundle: bundle,
		logger: observability.OrNop(logger).Named("locale"),
		locale: domain.DefaultLocale,
	}
}

// Restore loads the persisted locale. Missing or unsupported values keep the
// default.
func (m *LocaleManager) Restore(ctx context.Context) {
	raw, ok := m.store.Get(ctx, prefs.KeyLocale)
	if !ok {
		return
	}

	locale, ok := domain.ParseLocale(raw)
	if !ok {
		m.logger.Debug("ignoring unsupported persisted locale", zap.String("value", raw))
		return
	}

	m.mu.Lock()
	m.locale = locale
	m.mu.Unlock()
}

func (m *LocaleManager) Locale() domain.Locale {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.locale
}

// SetLocale switches to code and persists it. Unsupported codes are ignored
// and reported as false.
func (m *LocaleManager) SetLocale(ctx context.Context, code string) bool {
	locale, ok := domain.ParseLocale(code)
	if !ok {
		return false
	}

	m.apply(ctx, locale)
	return true
}

func (m *LocaleManager) Toggle(ctx context.Context) domain.Locale {
	m.mu.RLock()
	next := m.locale.Other()
	m.mu.RUnlock()

	m.apply(ctx, next)
	return next
}

func (m *LocaleManager) apply(ctx context.Context, locale domain.Locale) {
	m.mu.Lock()
	m.locale = locale
	m.mu.Unlock()

	m.store.Set(ctx, prefs.KeyLocale, string(locale))
}

func (m *LocaleManager) CurrentTable() *i18n.Table {
	return m.bundle.Table(m.Locale())
}

func (m *LocaleManager) Text(key i18n.MessageKey) string {
	return m.CurrentTable().Text(key)
}

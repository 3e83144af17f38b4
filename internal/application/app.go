package application

import (
	"context"
	"errors"

	"github.com/bnema/gamelan-harmony/internal/i18n"
	"github.com/bnema/gamelan-harmony/internal/observability"
	"github.com/bnema/gamelan-harmony/internal/ports"
	"github.com/bnema/gamelan-harmony/internal/prefs"
	"go.uber.org/zap"
)

var (
	errNilBackend   = errors.New("preference backend is nil")
	errNilCatalog   = errors.New("destination catalog is nil")
	errNilNotifier  = errors.New("notifier is nil")
	errNilNavigator = errors.New("navigator is nil")
)

type Deps struct {
	Backend   ports.PreferenceBackend
	Catalog   ports.DestinationCatalog
	Notifier  ports.Notifier
	Navigator ports.Navigator

	// Optional.
	Bundle         *i18n.Bundle
	Clock          ports.Clock
	Sleeper        ports.Sleeper
	Logger         *zap.Logger
	SessionOptions []SessionOption
}

// App is the shared state every screen reads from.
type App struct {
	Store    *prefs.Store
	Locale   *LocaleManager
	Session  *SessionManager
	Catalog  *CatalogService
	History  *HistoryService
	Settings *SettingsService
}

// NewApp builds the services in dependency order and restores the persisted
// locale and session. The locale is restored first so that anything the
// session reports is already in the user's language.
func NewApp(ctx context.Context, deps Deps) (*App, error) {
	switch {
	case deps.Backend == nil:
		return nil, errNilBackend
	case deps.Catalog == nil:
		return nil, errNilCatalog
	case deps.Notifier == nil:
		return nil, errNilNotifier
	case deps.Navigator == nil:
		return nil, errNilNavigator
	}

	logger := observability.OrNop(deps.Logger)
	store := prefs.NewStore(deps.Backend, logger)

	locale := NewLocaleManager(store, deps.Bundle, logger)
	locale.Restore(ctx)

	session := NewSessionManager(store, deps.Clock, deps.Sleeper, locale, logger, deps.SessionOptions...)
	session.Restore(ctx)

	catalog := NewCatalogService(deps.Catalog)
	history := NewHistoryService(store, session, catalog, deps.Clock, deps.Notifier, deps.Navigator, locale, logger)
	settings := NewSettingsService(store, session, history, deps.Notifier, deps.Navigator, locale, logger)

	return &App{
		Store:    store,
		Locale:   locale,
		Session:  session,
		Catalog:  catalog,
		History:  history,
		Settings: settings,
	}, nil
}

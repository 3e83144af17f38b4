package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/gamelan-harmony/internal/adapters/catalog/static"
	"github.com/bnema/gamelan-harmony/internal/adapters/notify/terminal"
	chainprefs "github.com/bnema/gamelan-harmony/internal/adapters/prefs/chain"
	memoryprefs "github.com/bnema/gamelan-harmony/internal/adapters/prefs/memory"
	sqliteprefs "github.com/bnema/gamelan-harmony/internal/adapters/prefs/sqlite"
	tomlprefs "github.com/bnema/gamelan-harmony/internal/adapters/prefs/toml"
	"github.com/bnema/gamelan-harmony/internal/adapters/render/screen"
	"github.com/bnema/gamelan-harmony/internal/application"
	"github.com/bnema/gamelan-harmony/internal/config"
	"github.com/bnema/gamelan-harmony/internal/observability"
	"github.com/bnema/gamelan-harmony/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const annotationSkipWire = "gamelan.skip-wire"

type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	core      *application.App
	notifier  *terminal.Notifier
	navigator *terminal.Navigator
	closers   []func() error

	ephemeral bool
}

// wire builds the application for one command invocation. Toasts and
// navigation hints go to stderr so stdout carries only the requested output.
func (a *app) wire(ctx context.Context, stderr io.Writer) error {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.ephemeral {
		cfg.Preferences.Backend = config.BackendMemory
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	backend, err := a.openBackend(ctx, v, cfg)
	if err != nil {
		return err
	}

	a.notifier = terminal.NewNotifier(stderr)
	a.navigator = terminal.NewNavigator(stderr)
	core, err := application.NewApp(ctx, application.Deps{
		Backend:        backend,
		Catalog:        static.NewCatalog(),
		Notifier:       a.notifier,
		Navigator:      a.navigator,
		Clock:          ports.SystemClock{},
		Sleeper:        ports.SystemSleeper{},
		Logger:         logger,
		SessionOptions: []application.SessionOption{application.WithLatency(cfg.Session.Latency)},
	})
	if err != nil {
		return fmt.Errorf("wire application: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.core = core
	logger.Debug("application wired", zap.String("backend", string(cfg.Preferences.Backend)))
	return nil
}

func (a *app) openBackend(ctx context.Context, v *viper.Viper, cfg *config.Config) (ports.PreferenceBackend, error) {
	switch cfg.Preferences.Backend {
	case config.BackendMemory:
		return memoryprefs.NewBackend(), nil
	case config.BackendSQLite:
		return a.openSQLite(ctx, cfg)
	case config.BackendChain:
		primary, err := a.openSQLite(ctx, cfg)
		if err != nil {
			return nil, err
		}
		fallback, err := tomlprefs.NewBackend(v)
		if err != nil {
			return nil, fmt.Errorf("wire toml preferences: %w", err)
		}
		backend, err := chainprefs.NewBackend(primary, fallback)
		if err != nil {
			return nil, fmt.Errorf("wire preference chain: %w", err)
		}
		return backend, nil
	default:
		backend, err := tomlprefs.NewBackend(v)
		if err != nil {
			return nil, fmt.Errorf("wire toml preferences: %w", err)
		}
		return backend, nil
	}
}

func (a *app) openSQLite(ctx context.Context, cfg *config.Config) (*sqliteprefs.Backend, error) {
	backend, err := sqliteprefs.Open(ctx, cfg.Preferences.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("wire sqlite preferences: %w", err)
	}
	a.closers = append(a.closers, backend.Close)
	return backend, nil
}

func (a *app) close() error {
	var errs []error
	for _, closer := range a.closers {
		errs = append(errs, closer())
	}
	a.closers = nil

	if a.logger != nil {
		// stderr sync fails with EINVAL on some platforms
		_ = a.logger.Sync()
	}

	return errors.Join(errs...)
}

func (a *app) screenOptions(ctx context.Context) screen.Options {
	return screen.Options{
		Table: a.core.Locale.CurrentTable(),
		Theme: a.core.Settings.Theme(ctx),
	}
}

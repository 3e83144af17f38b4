package application

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/i18n"
	"github.com/bnema/gamelan-harmony/internal/observability"
	"github.com/bnema/gamelan-harmony/internal/ports"
	"github.com/bnema/gamelan-harmony/internal/prefs"
	"go.uber.org/zap"
)

type SettingsService struct {
	store     *prefs.Store
	session   *SessionManager
	history   *HistoryService
	notifier  ports.Notifier
	navigator ports.Navigator
	messages  Messages
	logger    *zap.Logger
}

func NewSettingsService(
	store *prefs.Store,
	session *SessionManager,
	history *HistoryService,
	notifier ports.Notifier,
	navigator ports.Navigator,
	messages Messages,
	logger *zap.Logger,
) *SettingsService {
	return &SettingsService{
		store:     store,
		session:   session,
		history:   history,
		notifier:  notifier,
		navigator: navigator,
		messages:  messages,
		logger:    observability.OrNop(logger).Named("settings"),
	}
}

func (s *SettingsService) Theme(ctx context.Context) domain.Theme {
	raw, ok := s.store.Get(ctx, prefs.KeyTheme)
	if !ok {
		return domain.ThemeLight
	}

	theme, ok := domain.ParseTheme(raw)
	if !ok {
		s.logger.Debug("ignoring unsupported persisted theme", zap.String("value", raw))
		return domain.ThemeLight
	}
	return theme
}

func (s *SettingsService) SetTheme(ctx context.Context, theme domain.Theme) {
	s.store.Set(ctx, prefs.KeyTheme, string(theme))
}

func (s *SettingsService) ToggleTheme(ctx context.Context) domain.Theme {
	next := s.Theme(ctx).Toggle()
	s.SetTheme(ctx, next)
	return next
}

// EmailNotifications defaults to enabled.
func (s *SettingsService) EmailNotifications(ctx context.Context) bool {
	raw, ok := s.store.Get(ctx, prefs.KeyEmailNotifications)
	if !ok {
		return true
	}

	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		s.logger.Debug("ignoring malformed email notification flag", zap.String("value", raw))
		return true
	}
	return enabled
}

func (s *SettingsService) SetEmailNotifications(ctx context.Context, enabled bool) {
	s.store.Set(ctx, prefs.KeyEmailNotifications, strconv.FormatBool(enabled))
}

// DeleteAccount signs out, forgets the consultation history and returns to
// the home screen.
func (s *SettingsService) DeleteAccount(ctx context.Context) {
	s.session.Logout(ctx)
	s.history.Clear(ctx)

	message := fmt.Sprintf("%s. %s", s.messages.Text(i18n.AccountDeleted), s.messages.Text(i18n.AccountDeletedDesc))
	s.notifier.Notify(ctx, message, ports.SeverityDefault)
	s.navigator.GoTo(ctx, ports.RouteHome)
}

// Package prefs implements the never-failing preference store used by the
// session and locale managers. Backend errors are logged and swallowed.
package prefs

import (
	"context"
	"errors"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/observability"
	"github.com/bnema/gamelan-harmony/internal/ports"
	"go.uber.org/zap"
)

const (
	KeySession            = "gamelan-auth-user"
	KeyLocale             = "gamelan-language"
	KeyTheme              = "gamelan-theme"
	KeyEmailNotifications = "gamelan-email-notifications"
	KeyHistory            = "gamelan-history"
)

type Store struct {
	backend ports.PreferenceBackend
	logger  *zap.Logger
}

func NewStore(backend ports.PreferenceBackend, logger *zap.Logger) *Store {
	return &Store{backend: backend, logger: observability.OrNop(logger).Named("prefs")}
}

// Get returns the stored value and whether it was present. Storage failures
// read as absent.
func (s *Store) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.backend.Get(ctx, key)
	if err != nil {
		if !isMiss(err) {
			s.dropped("get", key, err)
		}
		return "", false
	}

	return value, true
}

// isMiss reports a plain absent key. A miss that also carries a storage
// failure, as a fallback chain reports it, is not plain.
func isMiss(err error) bool {
	return errors.Is(err, domain.ErrPreferenceNotFound) && !errors.Is(err, domain.ErrStorageFailure)
}

// Set is best-effort: a failed write is dropped.
func (s *Store) Set(ctx context.Context, key, value string) {
	if err := s.backend.Put(ctx, key, value); err != nil {
		s.dropped("set", key, err)
	}
}

// Remove is best-effort, like Set.
func (s *Store) Remove(ctx context.Context, key string) {
	if err := s.backend.Delete(ctx, key); err != nil {
		s.dropped("remove", key, err)
	}
}

func (s *Store) dropped(op, key string, err error) {
	s.logger.Warn("preference storage failure",
		zap.String("op", op),
		zap.String("key", key),
		zap.Error(errors.Join(domain.ErrStorageFailure, err)),
	)
}

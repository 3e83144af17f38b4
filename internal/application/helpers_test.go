package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/gamelan-harmony/internal/adapters/prefs/memory"
	"github.com/bnema/gamelan-harmony/internal/i18n"
	"github.com/bnema/gamelan-harmony/internal/prefs"
	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time {
	return c.now
}

// recordingSleeper returns immediately and remembers what it was asked to wait.
type recordingSleeper struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.waits = append(s.waits, d)
	s.mu.Unlock()

	return ctx.Err()
}

func (s *recordingSleeper) Waits() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]time.Duration(nil), s.waits...)
}

func newMemoryStore(t *testing.T) (*prefs.Store, *memory.Backend) {
	t.Helper()

	backend := memory.NewBackend()
	return prefs.NewStore(backend, nil), backend
}

func newLocale(t *testing.T, store *prefs.Store) *LocaleManager {
	t.Helper()

	return NewLocaleManager(store, i18n.Default(), nil)
}

var testNow = time.Date(2026, 3, 9, 10, 15, 30, 123456789, time.UTC)

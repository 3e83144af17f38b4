package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/ports"
)

// ErrUnavailable is returned by every call while the backend is set to fail.
var ErrUnavailable = errors.New("memory preference backend unavailable")

type Backend struct {
	mu      sync.RWMutex
	values  map[string]string
	failing bool
}

var _ ports.PreferenceBackend = (*Backend)(nil)

func NewBackend() *Backend {
	return &Backend{values: map[string]string{}}
}

// SetFailing makes every subsequent call fail (true) or succeed (false).
func (b *Backend) SetFailing(failing bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failing = failing
}

func (b *Backend) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.failing {
		return "", ErrUnavailable
	}

	value, ok := b.values[key]
	if !ok {
		return "", domain.ErrPreferenceNotFound
	}

	return value, nil
}

func (b *Backend) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failing {
		return ErrUnavailable
	}

	b.values[key] = value
	return nil
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failing {
		return ErrUnavailable
	}

	delete(b.values, key)
	return nil
}

// Snapshot returns a copy of every stored value.
func (b *Backend) Snapshot() map[string]string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string]string, len(b.values))
	for key, value := range b.values {
		out[key] = value
	}

	return out
}

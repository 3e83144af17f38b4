package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/ports"
)

// Backend tries primary first and falls back when it errors. Reads also fall
// back on a primary miss, since earlier writes may have landed in fallback
// only; deletes go to both.
type Backend struct {
	primary  ports.PreferenceBackend
	fallback ports.PreferenceBackend
}

var _ ports.PreferenceBackend = (*Backend)(nil)

var (
	errNilPrimaryBackend  = errors.New("primary preference backend is nil")
	errNilFallbackBackend = errors.New("fallback preference backend is nil")
)

func NewBackend(primary ports.PreferenceBackend, fallback ports.PreferenceBackend) (*Backend, error) {
	if primary == nil {
		return nil, errNilPrimaryBackend
	}
	if fallback == nil {
		return nil, errNilFallbackBackend
	}

	return &Backend{primary: primary, fallback: fallback}, nil
}

func (b *Backend) Get(ctx context.Context, key string) (string, error) {
	value, err := b.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := b.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}
	if errors.Is(err, domain.ErrPreferenceNotFound) {
		return "", fallbackErr
	}
	if errors.Is(fallbackErr, domain.ErrPreferenceNotFound) {
		// Still a miss for callers, but the primary outage stays visible.
		return "", errors.Join(fmt.Errorf("%w: primary backend get failed: %w", domain.ErrStorageFailure, err), fallbackErr)
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

func (b *Backend) Put(ctx context.Context, key string, value string) error {
	err := b.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := b.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	err := b.primary.Delete(ctx, key)
	if err != nil && shouldSkipFallback(err) {
		return err
	}

	fallbackErr := b.fallback.Delete(ctx, key)
	switch {
	case err == nil && fallbackErr == nil:
		return nil
	case err == nil:
		return fmt.Errorf("fallback backend delete failed: %w", fallbackErr)
	case fallbackErr == nil:
		return fmt.Errorf("primary backend delete failed: %w", err)
	default:
		return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
	}
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

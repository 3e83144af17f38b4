package ports

import "context"

// PreferenceBackend is durable key/value storage. Get returns
// domain.ErrPreferenceNotFound for unset keys; Delete of a missing key is not
// an error.
type PreferenceBackend interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

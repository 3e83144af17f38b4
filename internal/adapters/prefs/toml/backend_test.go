package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T, path string) *Backend {
	t.Helper()

	cfg := viper.New()
	cfg.Set("preferences.path", path)

	backend, err := NewBackend(cfg)
	require.NoError(t, err)
	return backend
}

func TestBackendRoundTrip(t *testing.T) {
	t.Parallel()

	backend := newTestBackend(t, filepath.Join(t.TempDir(), "preferences.toml"))
	ctx := context.Background()

	require.NoError(t, backend.Put(ctx, "gamelan-language", "en"))
	require.NoError(t, backend.Put(ctx, "gamelan-auth-user", `{"name":"Ilham","email":"user@gamelan.com","createdAt":"2026-02-14T11:00:00.000Z"}`))

	got, err := backend.Get(ctx, "gamelan-language")
	require.NoError(t, err)
	assert.Equal(t, "en", got)

	got, err = backend.Get(ctx, "gamelan-auth-user")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Ilham","email":"user@gamelan.com","createdAt":"2026-02-14T11:00:00.000Z"}`, got)
}

func TestBackendPutOverwrites(t *testing.T) {
	t.Parallel()

	backend := newTestBackend(t, filepath.Join(t.TempDir(), "preferences.toml"))
	ctx := context.Background()

	require.NoError(t, backend.Put(ctx, "gamelan-language", "en"))
	require.NoError(t, backend.Put(ctx, "gamelan-language", "id"))

	got, err := backend.Get(ctx, "gamelan-language")
	require.NoError(t, err)
	assert.Equal(t, "id", got)
}

func TestBackendMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	backend := newTestBackend(t, filepath.Join(t.TempDir(), "missing", "preferences.toml"))
	ctx := context.Background()

	_, err := backend.Get(ctx, "gamelan-language")
	require.ErrorIs(t, err, domain.ErrPreferenceNotFound)

	require.NoError(t, backend.Delete(ctx, "gamelan-language"))
}

func TestBackendDeleteRemovesOnlyThatKey(t *testing.T) {
	t.Parallel()

	backend := newTestBackend(t, filepath.Join(t.TempDir(), "preferences.toml"))
	ctx := context.Background()

	require.NoError(t, backend.Put(ctx, "gamelan-language", "en"))
	require.NoError(t, backend.Put(ctx, "gamelan-theme", "dark"))
	require.NoError(t, backend.Delete(ctx, "gamelan-language"))

	_, err := backend.Get(ctx, "gamelan-language")
	require.ErrorIs(t, err, domain.ErrPreferenceNotFound)

	got, err := backend.Get(ctx, "gamelan-theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)
}

func TestBackendDefaultPathAndPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	backend, err := NewBackend(viper.New())
	require.NoError(t, err)

	require.NoError(t, backend.Put(context.Background(), "gamelan-theme", "dark"))

	path := filepath.Join(homeDir, ".gamelan", "preferences.toml")
	assert.Equal(t, path, backend.Path())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())
}

func TestBackendMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("values = ["), 0o600))

	_, err := newTestBackend(t, path).Get(context.Background(), "gamelan-language")
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode preferences file")
}

func TestBackendFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 999\n"), 0o600))

	_, err := newTestBackend(t, path).Get(context.Background(), "gamelan-language")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported preferences schema version")
}

func TestBackendSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, newTestBackend(t, path).Put(context.Background(), "gamelan-language", "en"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "gamelan-language")
}

func TestBackendCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	backend := newTestBackend(t, filepath.Join(t.TempDir(), "preferences.toml"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := backend.Put(ctx, "gamelan-language", "en")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestBackendConcurrentPutsAcrossInstancesPreserveAllKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	backendA := newTestBackend(t, path)
	backendB := newTestBackend(t, path)

	const perBackendWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perBackendWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(backend *Backend, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perBackendWrites; i++ {
			errCh <- backend.Put(context.Background(), prefix+strconv.Itoa(i), "v")
		}
	}

	go write(backendA, "a-")
	go write(backendB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	for i := 0; i < perBackendWrites; i++ {
		_, err := backendA.Get(context.Background(), "b-"+strconv.Itoa(i))
		require.NoError(t, err)
		_, err = backendB.Get(context.Background(), "a-"+strconv.Itoa(i))
		require.NoError(t, err)
	}
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/gamelan-harmony/internal/adapters/prefs/sqlite/migrations"
	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/ports"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const dbDirMode = 0o700

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

type Backend struct {
	db *sql.DB
}

var _ ports.PreferenceBackend = (*Backend)(nil)

// Open opens (creating if needed) the database at dsn and migrates it. A dsn
// of ":memory:" keeps everything in process.
func Open(ctx context.Context, dsn string) (*Backend, error) {
	if dsn == "" {
		return nil, errors.New("sqlite preferences path is empty")
	}

	if dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), dbDirMode); err != nil {
			return nil, fmt.Errorf("create preferences database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open preferences database: %w", err)
	}
	if dsn == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Backend{db: db}, nil
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate preferences database: %w", err)
	}

	return nil
}

func (b *Backend) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := b.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get preference %q: %w", key, err)
	}

	return value, nil
}

func (b *Backend) Put(ctx context.Context, key string, value string) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
	`, key, value)
	if err != nil {
		return fmt.Errorf("put preference %q: %w", key, err)
	}

	return nil
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	if _, err := b.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete preference %q: %w", key, err)
	}

	return nil
}

func (b *Backend) Close() error {
	return b.db.Close()
}

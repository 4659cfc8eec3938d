package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/platform/config"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

// newTestStore opens a migrated SQLite database in a temporary directory.
// The database is closed when the test ends.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()

	store, err := Open(ctx, &Config{
		Driver:   DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "quotebook.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})

	require.NoError(t, store.Migrate(ctx))

	return store
}

func seedSource(t *testing.T, store *Store, name string) *domain.Source {
	t.Helper()

	ctx := context.Background()

	st := &domain.SourceType{Record: domain.Record{IsActive: true}, Name: "film-" + uuid.NewString()[:8]}
	require.NoError(t, store.SourceTypes().Create(ctx, st))

	src := &domain.Source{Record: domain.Record{IsActive: true}, Name: name, SourceTypeID: &st.ID}
	require.NoError(t, store.Sources().Create(ctx, src))

	return src
}

func seedQuote(t *testing.T, store *Store, src *domain.Source, text string, weight int) *domain.Quote {
	t.Helper()

	q := domain.NewQuote(text, src.ID, weight)
	require.NoError(t, store.Quotes().Create(context.Background(), q))

	return q
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		contains []string
	}{
		{
			name:     "plain path",
			path:     "/tmp/q.db",
			contains: []string{"file:/tmp/q.db?", "_txlock=immediate", "_journal_mode=WAL", "_foreign_keys=on"},
		},
		{
			name:     "existing options are kept",
			path:     "file:q.db?_txlock=deferred",
			contains: []string{"file:q.db?", "_txlock=deferred", "_busy_timeout=10000"},
		},
		{
			name:     "empty path uses default file",
			path:     "",
			contains: []string{"file:quotebook.db?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := sqliteDSN(tt.path)

			for _, want := range tt.contains {
				assert.Contains(t, dsn, want)
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(config.DatabaseConfig{
		Driver:        DriverPostgres,
		DSN:           "postgres://quotes@localhost/quotes",
		MaxOpenConns:  8,
		LogLevel:      "warn",
		SlowThreshold: time.Second,
	}, nil)

	assert.Equal(t, DriverPostgres, cfg.Driver)
	assert.Equal(t, 8, cfg.MaxOpenConns)
	assert.Equal(t, time.Second, cfg.SlowThreshold)
	assert.Nil(t, cfg.Logger)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), &Config{Driver: "mysql"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestOpen_NilConfig(t *testing.T) {
	_, err := Open(context.Background(), nil)

	require.Error(t, err)
}

func TestStore_HealthCheck(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t, "database", store.Name())
	assert.NoError(t, store.Check(context.Background()))
}

func TestMigrate_Idempotent(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Migrate(context.Background()))
}

func TestAtomically_RollsBackOnError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	src := seedSource(t, store, "Casablanca")

	boom := errors.New("boom")

	err := store.Atomically(ctx, func(tx ports.Store) error {
		q := domain.NewQuote("Here's looking at you, kid.", src.ID, 1)
		if err := tx.Quotes().Create(ctx, q); err != nil {
			return err
		}

		return boom
	})

	require.ErrorIs(t, err, boom)

	count, err := store.Quotes().CountActiveBySource(ctx, src.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAtomically_Commits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	src := seedSource(t, store, "Casablanca")

	err := store.Atomically(ctx, func(tx ports.Store) error {
		if _, err := tx.Sources().Lock(ctx, src.ID); err != nil {
			return err
		}

		return tx.Quotes().Create(ctx, domain.NewQuote("Round up the usual suspects.", src.ID, 1))
	})
	require.NoError(t, err)

	count, err := store.Quotes().CountActiveBySource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// Package storage persists the quote catalog with gorm on Postgres or SQLite.
//
// Every repository keeps two read paths: the active scope used by public
// pages and an unfiltered one for administrative recovery. Nothing in this
// package deletes rows; soft delete flips is_active.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jsamuelsen/quotebook/internal/platform/config"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	// sqliteBusyTimeout is how long a SQLite writer waits for the lock, in milliseconds.
	sqliteBusyTimeout = 10000

	defaultSlowThreshold = 200 * time.Millisecond
)

// indexes are created after AutoMigrate because gorm tags cannot express
// expression indexes.
var indexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_source_types_name_lower ON source_types (lower(name))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_sources_name_type ON sources (lower(name), source_type_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_quotes_text_lower ON quotes (lower(text))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_lower ON users (lower(username))`,
}

// Config configures the database connection.
type Config struct {
	// Driver is "sqlite" or "postgres".
	Driver string

	// DSN is a Postgres connection string or a SQLite file path.
	DSN string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// LogLevel is one of silent, error, warn or info.
	LogLevel string

	// SlowThreshold marks queries that are logged as slow.
	SlowThreshold time.Duration

	// Logger receives gorm's query log. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// NewConfig builds a storage config from the database settings.
func NewConfig(db config.DatabaseConfig, log *slog.Logger) *Config {
	return &Config{
		Driver:          db.Driver,
		DSN:             db.DSN,
		MaxOpenConns:    db.MaxOpenConns,
		MaxIdleConns:    db.MaxIdleConns,
		ConnMaxLifetime: db.ConnMaxLifetime,
		LogLevel:        db.LogLevel,
		SlowThreshold:   db.SlowThreshold,
		Logger:          log,
	}
}

// Store is a gorm backed ports.Store. The zero value is not usable; use Open.
type Store struct {
	db     *gorm.DB
	driver string
}

var _ ports.Store = (*Store)(nil)

// Open connects to the configured database.
func Open(ctx context.Context, cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	log = log.With(slog.String("component", "storage"), slog.String("driver", cfg.Driver))

	var dialector gorm.Dialector

	switch cfg.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(cfg.DSN))
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(log, cfg),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB: %w", err)
	}

	configurePool(sqlDB, cfg)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("pinging %s database: %w", cfg.Driver, err)
	}

	log.Info("database connected")

	return &Store{db: db, driver: cfg.Driver}, nil
}

// sqliteDSN turns a file path into a DSN that serializes writers at BEGIN,
// so a transaction that reads before it writes cannot lose a race.
func sqliteDSN(path string) string {
	if path == "" {
		path = "quotebook.db"
	}

	base, rawQuery, _ := strings.Cut(path, "?")
	if !strings.HasPrefix(base, "file:") {
		base = "file:" + base
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}

	setDefault := func(key, value string) {
		if query.Get(key) == "" {
			query.Set(key, value)
		}
	}

	setDefault("_txlock", "immediate")
	setDefault("_journal_mode", "WAL")
	setDefault("_busy_timeout", fmt.Sprint(sqliteBusyTimeout))
	setDefault("_foreign_keys", "on")

	return base + "?" + query.Encode()
}

func configurePool(sqlDB *sql.DB, cfg *Config) {
	if cfg.Driver == DriverSQLite {
		// One connection keeps every transaction on the same file handle.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)

		return
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

func newGormLogger(log *slog.Logger, cfg *Config) logger.Interface {
	level := logger.Warn

	switch strings.ToLower(cfg.LogLevel) {
	case "silent":
		level = logger.Silent
	case "error":
		level = logger.Error
	case "info":
		level = logger.Info
	}

	slow := cfg.SlowThreshold
	if slow <= 0 {
		slow = defaultSlowThreshold
	}

	return logger.New(slog.NewLogLogger(log.Handler(), slog.LevelWarn), logger.Config{
		SlowThreshold:             slow,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		ParameterizedQueries:      true,
	})
}

// Migrate creates or updates the schema.
func (s *Store) Migrate(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	if err := db.AutoMigrate(&sourceTypeRecord{}, &sourceRecord{}, &quoteRecord{}, &userRecord{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}

	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("getting sql.DB: %w", err)
	}

	return sqlDB.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "database"
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("getting sql.DB: %w", err)
	}

	return sqlDB.PingContext(ctx)
}

// SourceTypes returns the source type repository.
func (s *Store) SourceTypes() ports.SourceTypeRepository {
	return &sourceTypeRepo{db: s.db}
}

// Sources returns the source repository.
func (s *Store) Sources() ports.SourceRepository {
	return &sourceRepo{db: s.db}
}

// Quotes returns the quote repository.
func (s *Store) Quotes() ports.QuoteRepository {
	return &quoteRepo{db: s.db}
}

// Users returns the user repository.
func (s *Store) Users() ports.UserRepository {
	return &userRepo{db: s.db}
}

// Atomically runs fn inside one database transaction. fn must only use the
// Store it receives; on SQLite the pool has a single connection and a call
// through the outer Store would wait forever.
func (s *Store) Atomically(ctx context.Context, fn func(tx ports.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, driver: s.driver})
	})
}

// active limits a query to rows that are not soft deleted.
func active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

package sqlstore

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chris/debt-ledger/pkg/storage"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	mpg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported values for Config.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

//go:embed migrations
var migrations embed.FS

// Config selects and tunes the SQL backend.
type Config struct {
	Driver string
	DSN    string

	// MaxOpenConns is ignored for SQLite, which always uses a single connection.
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// Store implements the Storage interface on a relational database through gorm.
type Store struct {
	db      *gorm.DB
	dialect string

	// Now stamps created_at, paid_at and deleted_at. Defaults to UTC wall time.
	Now func() time.Time
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// Open connects to the configured database and applies pending migrations.
func Open(cfg Config) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Warn),
		NowFunc:                func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if cfg.Driver == DriverSQLite {
		// In-memory databases exist per connection and SQLite serialises writers anyway.
		sqlDB.SetMaxOpenConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		}
	}

	store := New(db)
	if err := store.Migrate(); err != nil {
		return nil, err
	}
	return store, nil
}

// New wraps an existing gorm connection. The schema must already be migrated.
func New(db *gorm.DB) *Store {
	return &Store{db: db, dialect: db.Dialector.Name()}
}

// Migrate applies the embedded schema migrations for the store's dialect.
func (s *Store) Migrate() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	var (
		driver database.Driver
		name   string
	)
	switch s.dialect {
	case DriverPostgres:
		name = "postgres"
		driver, err = mpg.WithInstance(sqlDB, &mpg.Config{})
	case DriverSQLite:
		name = "sqlite3"
		driver, err = sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	default:
		return fmt.Errorf("no migrations for dialect %q", s.dialect)
	}
	if err != nil {
		return fmt.Errorf("failed to create %s migration driver: %w", name, err)
	}

	source, err := iofs.New(migrations, "migrations/"+s.dialect)
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	// The migrator is not closed: its driver shares the store's connection pool.
	m, err := migrate.NewWithInstance("iofs", source, name, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// likePattern builds a case-insensitive substring pattern for LIKE ... ESCAPE '\'.
func likePattern(query string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(strings.TrimSpace(query))) + "%"
}

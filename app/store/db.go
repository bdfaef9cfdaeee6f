package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	_ "github.com/jackc/pgx/v5/stdlib" // postgresql driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver
)

// Store keeps client preferences in the prefs table of SQLite or PostgreSQL.
type Store struct {
	db      *sqlx.DB
	backend backend
}

// pref is a row of the prefs table.
type pref struct {
	Scope     string    `db:"scope"`
	Name      string    `db:"name"`
	Value     string    `db:"value"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// backend holds what differs between the supported databases.
type backend struct {
	title  string
	driver string // sqlx driver name, also selects the bind style
	schema string
	dsn    func(dbURL string) string
	pool   func(db *sqlx.DB)
}

var sqliteBackend = backend{
	title:  "sqlite",
	driver: "sqlite",
	schema: `CREATE TABLE IF NOT EXISTS prefs (
		scope TEXT NOT NULL,
		name TEXT NOT NULL,
		value TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		PRIMARY KEY (scope, name)
	)`,
	dsn: sqliteDSN,
	pool: func(db *sqlx.DB) {
		db.SetMaxOpenConns(1) // single writer, concurrent callers queue on the pool
	},
}

var postgresBackend = backend{
	title:  "postgres",
	driver: "pgx",
	schema: `CREATE TABLE IF NOT EXISTS prefs (
		scope TEXT NOT NULL,
		name TEXT NOT NULL,
		value TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (scope, name)
	)`,
	dsn: func(dbURL string) string { return dbURL },
	pool: func(db *sqlx.DB) {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)
	},
}

// backendFor picks the database by URL scheme. Anything that isn't a postgres URL
// is a sqlite file path.
func backendFor(dbURL string) backend {
	lower := strings.ToLower(dbURL)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return postgresBackend
	}
	return sqliteBackend
}

// sqliteDSN adds the connection pragmas to a sqlite path, keeping any query the caller set.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
}

// New connects to the database at dbURL and makes sure the prefs table exists.
func New(ctx context.Context, dbURL string) (*Store, error) {
	be := backendFor(dbURL)
	db, err := sqlx.ConnectContext(ctx, be.driver, be.dsn(dbURL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", be.title, err)
	}
	be.pool(db)

	if _, err := db.ExecContext(ctx, be.schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create prefs table: %w", err)
	}
	log.Printf("[DEBUG] preference store on %s", be.title)
	return &Store{db: db, backend: be}, nil
}

// Get returns the value of the named preference of the client scope.
// Returns ErrNotFound if the client never set it.
func (s *Store) Get(ctx context.Context, scope, name string) (string, error) {
	var value string
	query := s.db.Rebind("SELECT value FROM prefs WHERE scope = ? AND name = ?")
	err := s.db.GetContext(ctx, &value, query, scope, name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s of %s: %w", name, scope, err)
	}
	return value, nil
}

// Set writes the named preference of the client scope, replacing the prior value.
func (s *Store) Set(ctx context.Context, scope, name, value string) error {
	now := time.Now().UTC()
	p := pref{Scope: scope, Name: name, Value: value, CreatedAt: now, UpdatedAt: now}
	query := `INSERT INTO prefs (scope, name, value, created_at, updated_at)
		VALUES (:scope, :name, :value, :created_at, :updated_at)
		ON CONFLICT (scope, name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := s.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("failed to set %s of %s: %w", name, scope, err)
	}
	return nil
}

// Delete removes the named preference of the client scope.
// Returns ErrNotFound if there was nothing to remove.
func (s *Store) Delete(ctx context.Context, scope, name string) error {
	query := s.db.Rebind("DELETE FROM prefs WHERE scope = ? AND name = ?")
	res, err := s.db.ExecContext(ctx, query, scope, name)
	if err != nil {
		return fmt.Errorf("failed to delete %s of %s: %w", name, scope, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", s.backend.title, err)
	}
	return nil
}

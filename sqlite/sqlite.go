// Package sqlite provides SQLite-based storage for feeds and articles.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// pragmas are applied to every connection in order. WAL is skipped for
// in-memory databases, which do not support it.
var pragmas = []struct {
	stmt     string
	fileOnly bool
}{
	{stmt: "PRAGMA busy_timeout = 5000"},
	{stmt: "PRAGMA journal_mode = WAL", fileOnly: true},
	{stmt: "PRAGMA foreign_keys = ON"},
}

// migrations are applied in order; the schema version is their count,
// stored in PRAGMA user_version. Append only.
var migrations = []string{
	`CREATE TABLE feeds (
		id TEXT PRIMARY KEY,
		url TEXT NOT NULL UNIQUE,
		category TEXT NOT NULL,
		active INTEGER NOT NULL DEFAULT 1,
		poll_interval_seconds INTEGER NOT NULL,
		last_fetched_at TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE articles (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		original_content TEXT NOT NULL DEFAULT '',
		processed_content TEXT NOT NULL DEFAULT '',
		summary TEXT NOT NULL DEFAULT '',
		source_url TEXT NOT NULL UNIQUE,
		source_name TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		published_at TEXT NOT NULL,
		category TEXT NOT NULL,
		published INTEGER NOT NULL DEFAULT 0,
		slug TEXT NOT NULL UNIQUE,
		tags TEXT NOT NULL DEFAULT '',
		content_hash TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);`,

	`CREATE INDEX idx_articles_published_at ON articles(published_at);
	CREATE INDEX idx_articles_category ON articles(category, published);`,
}

// SchemaVersion is the schema version written by Open.
var SchemaVersion = len(migrations)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use MemoryPath for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and migrates the schema.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time; a single connection also keeps an in-memory
	// database alive between queries.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, p := range pragmas {
		if p.fileOnly && db.path == MemoryPath {
			continue
		}
		if _, err := conn.Exec(p.stmt); err != nil {
			conn.Close()
			return fmt.Errorf("failed to apply %q: %w", p.stmt, err)
		}
	}

	db.db = conn

	if err := db.migrate(context.Background()); err != nil {
		conn.Close()
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// Version returns the schema version recorded in the database.
func (db *DB) Version(ctx context.Context) (int, error) {
	var v int
	if err := db.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, err
	}
	return v, nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// migrate applies every migration newer than the stored version, each in
// its own transaction together with the version bump.
func (db *DB) migrate(ctx context.Context) error {
	current, err := db.Version(ctx)
	if err != nil {
		return err
	}
	if current > len(migrations) {
		return fmt.Errorf("database schema version %d is newer than supported version %d", current, len(migrations))
	}

	for v := current; v < len(migrations); v++ {
		tx, err := db.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, migrations[v]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d: %w", v+1, err)
		}
		// PRAGMA does not accept bound parameters.
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", v+1)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d: %w", v+1, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

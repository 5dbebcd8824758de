package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Config selects the database backend.
type Config struct {
	// Driver is "sqlite3" or "postgres".
	Driver string
	// DSN is the file path for sqlite3 or a connection string for postgres.
	DSN string
}

// DefaultConfig stores the collection in a local sqlite file.
func DefaultConfig() Config {
	return Config{
		Driver: "sqlite3",
		DSN:    filepath.Join("data", "vocab.db"),
	}
}

// Connect opens the database and creates the schema if it is missing.
func Connect(cfg Config) (*sqlx.DB, error) {
	if cfg.Driver == "" {
		cfg = DefaultConfig()
	}

	if cfg.Driver == "sqlite3" && cfg.DSN != ":memory:" {
		if dir := filepath.Dir(cfg.DSN); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	db, err := sqlx.Connect(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver == "sqlite3" {
		// SQLite doesn't support multiple writers, and the pragma is
		// per-connection, so pin the pool to one connection first.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if err := initializeSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// initializeSchema creates the tables if they don't exist.
func initializeSchema(db *sqlx.DB) error {
	stmts := sqliteSchema
	if db.DriverName() == "postgres" {
		stmts = postgresSchema
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS verbs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		base TEXT NOT NULL UNIQUE,
		past TEXT NOT NULL,
		participle TEXT NOT NULL,
		conjugation_type TEXT NOT NULL,
		level TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		meaning TEXT NOT NULL DEFAULT '',
		example TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS review_states (
		item_id INTEGER PRIMARY KEY,
		correct_count INTEGER NOT NULL DEFAULT 0,
		incorrect_count INTEGER NOT NULL DEFAULT 0,
		ease REAL NOT NULL DEFAULT 2.5,
		last_reviewed_at TIMESTAMP,
		next_due_at TIMESTAMP NOT NULL,
		FOREIGN KEY (item_id) REFERENCES verbs(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS quiz_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		total_items INTEGER NOT NULL,
		correct_items INTEGER NOT NULL,
		duration INTEGER NOT NULL DEFAULT 0,
		taken_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS verbs (
		id SERIAL PRIMARY KEY,
		base TEXT NOT NULL UNIQUE,
		past TEXT NOT NULL,
		participle TEXT NOT NULL,
		conjugation_type TEXT NOT NULL,
		level TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		meaning TEXT NOT NULL DEFAULT '',
		example TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ DEFAULT NOW(),
		updated_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS review_states (
		item_id INTEGER PRIMARY KEY REFERENCES verbs(id) ON DELETE CASCADE,
		correct_count INTEGER NOT NULL DEFAULT 0,
		incorrect_count INTEGER NOT NULL DEFAULT 0,
		ease DOUBLE PRECISION NOT NULL DEFAULT 2.5,
		last_reviewed_at TIMESTAMPTZ,
		next_due_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS quiz_results (
		id SERIAL PRIMARY KEY,
		kind TEXT NOT NULL,
		total_items INTEGER NOT NULL,
		correct_items INTEGER NOT NULL,
		duration INTEGER NOT NULL DEFAULT 0,
		taken_at TIMESTAMPTZ DEFAULT NOW()
	)`,
}

package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		// Notes table. Color is stored as a palette ordinal so the
		// default collection ordering (ORDER BY color) stays stable
		// across schema versions.
		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			color INTEGER NOT NULL DEFAULT 0,
			date_edit DATETIME NOT NULL,
			is_deleted INTEGER NOT NULL DEFAULT 0,
			is_date_shown INTEGER NOT NULL DEFAULT 1
		)`,

		// Tasks table
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			description TEXT NOT NULL,
			color INTEGER NOT NULL DEFAULT 0,
			date_edit DATETIME NOT NULL,
			is_active INTEGER NOT NULL DEFAULT 1,
			is_important INTEGER NOT NULL DEFAULT 0,
			is_deleted INTEGER NOT NULL DEFAULT 0
		)`,

		// Indexes for performance
		`CREATE INDEX IF NOT EXISTS idx_notes_deleted ON notes(is_deleted)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_color ON notes(color)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_deleted ON tasks(is_deleted)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_active ON tasks(is_active)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"ideator/internal/repository/postgres"
)

// NewTestDB creates an in-memory SQLite database with the application
// schema for repository tests.
func NewTestDB(t *testing.T) *postgres.DB {
	t.Helper()

	raw, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	raw.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email VARCHAR(255) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		subscription VARCHAR(32) NOT NULL DEFAULT 'free',
		preferences TEXT NOT NULL DEFAULT '{}',
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	);

	CREATE TABLE content_ideas (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		content_type VARCHAR(32) NOT NULL,
		keywords TEXT NOT NULL DEFAULT '[]',
		status VARCHAR(32) NOT NULL DEFAULT 'draft',
		calendar_date BIGINT,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	);

	CREATE TABLE trend_data (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		keyword VARCHAR(255) NOT NULL,
		industry VARCHAR(255) NOT NULL DEFAULT '',
		trend_score REAL NOT NULL DEFAULT 0,
		points TEXT NOT NULL DEFAULT '[]',
		source VARCHAR(64) NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL
	);
	`

	if _, err := raw.Exec(schema); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	db := postgres.NewWithDB(raw, "sqlite")
	t.Cleanup(func() { db.Close() })
	return db
}

// Package dbtest opens an in-memory SQLite database with the application
// schema for repository and service tests. The schema mirrors the production
// migration with SQLite-compatible column types.
package dbtest

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

var schema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'member',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE movies (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL UNIQUE,
		poster TEXT NOT NULL DEFAULT '',
		year TEXT NOT NULL DEFAULT '',
		rated TEXT NOT NULL DEFAULT '',
		runtime TEXT NOT NULL DEFAULT '',
		genre TEXT NOT NULL DEFAULT '',
		plot TEXT NOT NULL DEFAULT '',
		imdb_rating TEXT NOT NULL DEFAULT '',
		metascore TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE watchlist (
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		movie_id TEXT NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
		added_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, movie_id)
	)`,
	`CREATE TABLE ratings (
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		movie_id TEXT NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 10),
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, movie_id)
	)`,
}

// Open returns a fresh in-memory database. A single connection keeps every
// statement on the same memory store.
func Open(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func SeedUser(t *testing.T, db *sql.DB, username string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(`INSERT INTO users (id, username, email, password_hash) VALUES ($1, $2, $3, $4)`,
		id, username, username+"@example.com", "test-hash")
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return id
}

func SeedAdmin(t *testing.T, db *sql.DB, username string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(`INSERT INTO users (id, username, email, password_hash, role) VALUES ($1, $2, $3, $4, 'admin')`,
		id, username, username+"@example.com", "test-hash")
	if err != nil {
		t.Fatalf("seed admin %s: %v", username, err)
	}
	return id
}

func SeedMovie(t *testing.T, db *sql.DB, title string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(`INSERT INTO movies (id, title) VALUES ($1, $2)`, id, title)
	if err != nil {
		t.Fatalf("seed movie %q: %v", title, err)
	}
	return id
}

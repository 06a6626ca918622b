package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"moviebot/internal/models"

	_ "modernc.org/sqlite"
)

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (or creates) the SQLite user directory at the given path
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	// WAL mode allows readers to proceed while a touch is being written.
	// modernc.org/sqlite takes pragmas via _pragma=name(value) parameters.
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't support multiple writers well
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Initialize creates the users table if it does not exist. The same schema is
// managed by the migrations directory; applying it here keeps a bare run
// working without a separate migrate step.
func (db *SQLiteDB) Initialize(ctx context.Context) error {
	_, err := db.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			user_id INTEGER PRIMARY KEY,
			username TEXT,
			first_seen TEXT NOT NULL,
			last_active TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}

// TouchUser upserts the user's row: first_seen is written once on insert,
// last_active and username are refreshed on every call. A single statement
// keeps the upsert transactional under concurrent sessions.
func (db *SQLiteDB) TouchUser(ctx context.Context, userID int64, username string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := db.db.ExecContext(ctx, `
		INSERT INTO users (user_id, username, first_seen, last_active)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			username = excluded.username,
			last_active = excluded.last_active
	`, userID, username, now, now)
	if err != nil {
		return fmt.Errorf("failed to touch user: %w", err)
	}
	return nil
}

// ActiveSince returns users whose last_active is at or after the cutoff.
// Timestamps are RFC 3339 in UTC, so the string comparison orders correctly.
func (db *SQLiteDB) ActiveSince(ctx context.Context, cutoff time.Time) ([]models.UserRecord, error) {
	rows, err := db.db.QueryContext(ctx,
		`SELECT user_id, username, first_seen, last_active FROM users WHERE last_active >= ?`,
		cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("failed to query active users: %w", err)
	}
	defer rows.Close()

	var users []models.UserRecord
	for rows.Next() {
		var (
			user       models.UserRecord
			firstSeen  string
			lastActive string
		)
		if err := rows.Scan(&user.ID, &user.Username, &firstSeen, &lastActive); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		if user.FirstSeen, err = time.Parse(time.RFC3339, firstSeen); err != nil {
			return nil, fmt.Errorf("failed to parse first_seen: %w", err)
		}
		if user.LastActive, err = time.Parse(time.RFC3339, lastActive); err != nil {
			return nil, fmt.Errorf("failed to parse last_active: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Close closes the database connection
func (db *SQLiteDB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

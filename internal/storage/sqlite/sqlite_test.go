package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a SQLite directory backed by a temp file
func setupTestDB(t *testing.T) *SQLiteDB {
	t.Helper()

	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, db.Initialize(context.Background()))
	return db
}

func TestNewSQLiteDB_AppliesConnectionPragmas(t *testing.T) {
	db := setupTestDB(t)

	var mode string
	require.NoError(t, db.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var timeout int
	require.NoError(t, db.db.QueryRow("PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 5000, timeout)
}

func TestTouchUser_CreatesRecord(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.TouchUser(ctx, 100, "alice"))

	users, err := db.ActiveSince(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(100), users[0].ID)
	assert.Equal(t, "alice", users[0].Username)
	assert.False(t, users[0].FirstSeen.IsZero())
	assert.False(t, users[0].LastActive.Before(users[0].FirstSeen))
}

func TestTouchUser_FirstSeenIsStable(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.TouchUser(ctx, 100, "alice"))

	users, err := db.ActiveSince(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, users, 1)
	firstSeen := users[0].FirstSeen

	// A later touch must refresh last_active but never first_seen
	require.NoError(t, db.TouchUser(ctx, 100, "alice_renamed"))

	users, err = db.ActiveSince(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, firstSeen, users[0].FirstSeen)
	assert.Equal(t, "alice_renamed", users[0].Username)
	assert.False(t, users[0].LastActive.Before(firstSeen))
}

func TestActiveSince_FiltersByCutoff(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.TouchUser(ctx, 100, "alice"))
	require.NoError(t, db.TouchUser(ctx, 200, "bob"))

	users, err := db.ActiveSince(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = db.ActiveSince(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, users)
}

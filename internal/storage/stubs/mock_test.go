package stubs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockDirectory_TouchUser(t *testing.T) {
	m := NewMockDirectory()
	ctx := context.Background()

	require.NoError(t, m.TouchUser(ctx, 100, "alice"))
	require.NoError(t, m.TouchUser(ctx, 200, "bob"))

	users, err := m.ActiveSince(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, users, 2)

	// Insertion order is preserved
	assert.Equal(t, int64(100), users[0].ID)
	assert.Equal(t, int64(200), users[1].ID)
	assert.Equal(t, 2, m.TouchCalls)
}

func TestMockDirectory_TouchKeepsFirstSeen(t *testing.T) {
	m := NewMockDirectory()
	ctx := context.Background()

	require.NoError(t, m.TouchUser(ctx, 100, "alice"))

	users, err := m.ActiveSince(ctx, time.Time{})
	require.NoError(t, err)
	firstSeen := users[0].FirstSeen

	require.NoError(t, m.TouchUser(ctx, 100, "alice"))

	users, err = m.ActiveSince(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, firstSeen, users[0].FirstSeen)
	assert.False(t, users[0].LastActive.Before(firstSeen))
}

func TestMockDirectory_ActiveSinceCutoff(t *testing.T) {
	m := NewMockDirectory()
	ctx := context.Background()

	require.NoError(t, m.TouchUser(ctx, 100, "alice"))

	users, err := m.ActiveSince(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, 1, m.ActiveCalls)
}

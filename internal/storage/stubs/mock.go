package stubs

import (
	"context"
	"sync"
	"time"

	"moviebot/internal/models"
)

// MockDirectory is an in-memory implementation of the Directory interface for
// testing. It counts calls so tests can verify that privileged paths never
// reach the store.
type MockDirectory struct {
	mu    sync.RWMutex
	users map[int64]*models.UserRecord
	order []int64

	TouchCalls  int
	ActiveCalls int
}

// NewMockDirectory creates a new mock directory
func NewMockDirectory() *MockDirectory {
	return &MockDirectory{
		users: make(map[int64]*models.UserRecord),
	}
}

// Initialize is a no-op for the in-memory store
func (m *MockDirectory) Initialize(ctx context.Context) error {
	return nil
}

// TouchUser creates or refreshes the user's record
func (m *MockDirectory) TouchUser(ctx context.Context, userID int64, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TouchCalls++
	now := time.Now().UTC()

	if user, ok := m.users[userID]; ok {
		user.Username = username
		user.LastActive = now
		return nil
	}

	m.users[userID] = &models.UserRecord{
		ID:         userID,
		Username:   username,
		FirstSeen:  now,
		LastActive: now,
	}
	m.order = append(m.order, userID)
	return nil
}

// ActiveSince returns users active at or after the cutoff, in insertion order
func (m *MockDirectory) ActiveSince(ctx context.Context, cutoff time.Time) ([]models.UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ActiveCalls++

	var users []models.UserRecord
	for _, id := range m.order {
		if user := m.users[id]; !user.LastActive.Before(cutoff) {
			users = append(users, *user)
		}
	}
	return users, nil
}

// Close is a no-op for the in-memory store
func (m *MockDirectory) Close() error {
	return nil
}

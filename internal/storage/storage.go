package storage

import (
	"context"
	"time"

	"moviebot/internal/models"
)

// Directory defines the interface for the per-user activity store
type Directory interface {
	// TouchUser records activity for a user. The record is created on first
	// contact (first_seen set once) and last_active is updated on every call.
	TouchUser(ctx context.Context, userID int64, username string) error

	// ActiveSince returns users whose last activity is at or after the cutoff,
	// in storage order.
	ActiveSince(ctx context.Context, cutoff time.Time) ([]models.UserRecord, error)

	// Lifecycle
	Initialize(ctx context.Context) error
	Close() error
}

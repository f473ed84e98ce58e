// Package repository defines the session store interface and errors.
package repository

import (
	"context"

	"github.com/innerlens/innerlens/internal/domain/model"
)

// Store provides read/write access to assessment sessions.
type Store interface {
	// Create persists a new session. Returns ErrAlreadyExists when the id
	// is taken.
	Create(ctx context.Context, session *model.Session) error

	// Get returns the session for an id.
	// Returns ErrNotFound if the session is unknown or expired.
	Get(ctx context.Context, id string) (*model.Session, error)

	// Save overwrites an existing session and refreshes its expiry.
	// Returns ErrNotFound if the session is unknown.
	Save(ctx context.Context, session *model.Session) error

	// Delete removes a session. Returns ErrNotFound if the session is
	// unknown.
	Delete(ctx context.Context, id string) error

	// Count returns the number of live sessions tracked by the store.
	Count(ctx context.Context) int

	// Close releases background resources held by the store.
	Close() error
}

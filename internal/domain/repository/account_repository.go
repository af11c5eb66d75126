// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"simsure/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// ErrVersionConflict is returned when a versioned write is based on a stale
// account snapshot. Callers reload the document and retry or surface a conflict.
var ErrVersionConflict = errors.New("account version conflict")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account document.
	Create(ctx context.Context, account *entity.Account) error

	// Update replaces the account document if and only if the stored version
	// matches account.Version; on success the stored version is incremented.
	// Returns ErrVersionConflict on a stale base version.
	Update(ctx context.Context, account *entity.Account) error

	// Watch streams account snapshots as the document changes. The returned
	// channel is closed when ctx is done or the stream fails. Last writer
	// wins; no ordering guarantee beyond most-recent-snapshot delivery.
	Watch(ctx context.Context, id uuid.UUID) (<-chan *entity.Account, error)
}

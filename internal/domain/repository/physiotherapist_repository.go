// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"fisiohub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when a physiotherapist is not found.
var ErrProfileNotFound = errors.New("physiotherapist not found")

// ErrDuplicateEmail is returned when the store's unique index on email rejects
// an insert or update. The store is the authoritative enforcer of email
// uniqueness; any pre-check in the application layer is a fast path only.
var ErrDuplicateEmail = errors.New("email already registered")

// PhysiotherapistRepository defines the standard operations for profile persistence.
// The application layer depends on this interface, not the concrete implementation.
// All operations are point lookups or single-record writes; the store is not
// expected to provide cross-record transactions.
type PhysiotherapistRepository interface {
	// FindByID retrieves a single profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Physiotherapist, error)

	// FindByEmail retrieves a single profile by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Physiotherapist, error)

	// FindAll returns a snapshot of every stored profile in the store's
	// natural return order.
	FindAll(ctx context.Context) ([]*entity.Physiotherapist, error)

	// Create persists a new profile and assigns its ID.
	Create(ctx context.Context, profile *entity.Physiotherapist) error

	// Update replaces the stored record for the profile's ID.
	Update(ctx context.Context, profile *entity.Physiotherapist) error

	// Delete removes the profile with the given ID. Deleting an ID that is
	// not present is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

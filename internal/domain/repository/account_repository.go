// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatehouse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateEmail is returned by Create when the store's unique constraint
// on email rejects the insert. The store is the sole arbiter of uniqueness;
// callers must not pre-check with FindByEmail and create afterwards.
var ErrDuplicateEmail = errors.New("email already registered")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. The insert must be atomic with respect
	// to the unique email constraint; a conflict surfaces as ErrDuplicateEmail.
	Create(ctx context.Context, account *entity.Account) error

	// MarkVerified flips the verified flag to true for the account with the
	// given email. Verifying an already-verified account is a harmless
	// true->true write; verifying an unknown email is a silent no-op.
	MarkVerified(ctx context.Context, email string) error
}

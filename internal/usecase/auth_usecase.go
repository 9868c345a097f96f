// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatehouse/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationState reports what happened to the verification message that
// registration tried to send. Message delivery is best-effort and never
// fails the registration itself, so the state is surfaced explicitly
// instead of being swallowed.
type NotificationState string

const (
	// NotificationSent means the verification message was handed to the mail service.
	NotificationSent NotificationState = "sent"

	// NotificationFailed means the mail service reported an error; the
	// account still exists and can request verification again.
	NotificationFailed NotificationState = "failed"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account and the delivery state
// of its verification message.
type RegisterOutput struct {
	Account      *entity.Account   `json:"account"`
	Notification NotificationState `json:"notification"`
}

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	Token   string          `json:"token"`
	Account *entity.Account `json:"account"`
}

// AuthUsecase defines the interface for account authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) depends on.
type AuthUsecase interface {
	// Register creates a new unverified account and sends a verification link.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Verify consumes a verification token and marks the account verified.
	Verify(ctx context.Context, token string) error

	// Login checks credentials against a verified account and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Account loads the account behind an authenticated session.
	Account(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}

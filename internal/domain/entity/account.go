// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered user's stored identity record.
// Email is the unique login identifier; Verified starts false and only
// ever transitions to true after the owner proves control of the address.
type Account struct {
	ID           uuid.UUID `json:"id"`         // The unique identifier for the account, generated by the store.
	Email        string    `json:"email"`      // The account's email address, unique and case-sensitive as stored.
	Name         string    `json:"name"`       // The account's display name.
	PasswordHash string    `json:"-"`          // Opaque output of the password hasher. Never serialized.
	Verified     bool      `json:"verified"`   // Whether the email address has been confirmed.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification to this account.
}

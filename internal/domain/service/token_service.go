package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the custom claims embedded in session tokens.
type SessionClaims struct {
	AccountID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed tokens.
// This abstracts the details of token creation from the use cases.
//
// Two token kinds exist: verification tokens prove control of an email
// address during registration, session tokens represent an authenticated
// session after login. A token of one kind never verifies as the other.
type TokenService interface {
	// IssueVerificationToken creates a signed, expiring token over the given email.
	IssueVerificationToken(email string) (string, error)

	// VerifyVerificationToken checks a verification token and returns the
	// embedded email claim on success.
	VerifyVerificationToken(tokenString string) (string, error)

	// IssueSessionToken creates a signed session token for the given account.
	IssueSessionToken(accountID uuid.UUID) (string, error)

	// VerifySessionToken checks the validity of a session token string.
	VerifySessionToken(tokenString string) (*SessionClaims, error)
}

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gatehouse/config"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/service"
)

const (
	tokenTypeVerify  = "verify"
	tokenTypeSession = "session"

	defaultVerificationTTL = 24 * time.Hour
	defaultSessionTTL      = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Both token kinds are HS256-signed with the same shared secret and are
// distinguished by a "typ" claim so one can never pass for the other.
type jwtService struct {
	secret          string
	verificationTTL time.Duration
	sessionTTL      time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Auth == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	svc := &jwtService{
		secret:          cfg.SecretKey.Auth,
		verificationTTL: defaultVerificationTTL,
		sessionTTL:      defaultSessionTTL,
	}
	if cfg.Auth != nil {
		if cfg.Auth.VerificationTokenTTL > 0 {
			svc.verificationTTL = cfg.Auth.VerificationTokenTTL
		}
		if cfg.Auth.SessionTokenTTL > 0 {
			svc.sessionTTL = cfg.Auth.SessionTokenTTL
		}
	}

	return svc, nil
}

// IssueVerificationToken creates a signed token embedding the email claim,
// expiring after the configured verification TTL.
func (s *jwtService) IssueVerificationToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"typ":   tokenTypeVerify,
		"iat":   now.Unix(),
		"exp":   now.Add(s.verificationTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// VerifyVerificationToken checks signature, expiry and token type, and
// returns the embedded email claim.
func (s *jwtService) VerifyVerificationToken(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}

	if typ, _ := claims["typ"].(string); typ != tokenTypeVerify {
		return "", domainerrors.ErrTokenInvalid.WrapMessage("not a verification token")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", domainerrors.ErrTokenInvalid.WrapMessage("email claim missing")
	}

	return email, nil
}

// IssueSessionToken creates a signed session token for the given account ID.
func (s *jwtService) IssueSessionToken(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": accountID.String(),
		"typ": tokenTypeSession,
		"iat": now.Unix(),
		"exp": now.Add(s.sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// VerifySessionToken checks signature, expiry and token type, and returns
// the session claims.
func (s *jwtService) VerifySessionToken(tokenString string) (*service.SessionClaims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}

	if typ, _ := claims["typ"].(string); typ != tokenTypeSession {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("not a session token")
	}

	sub, _ := claims["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("subject claim is not an account id")
	}

	return &service.SessionClaims{AccountID: accountID}, nil
}

// parse validates the signature and standard claims of a token string.
// Expiry maps to ErrTokenExpired, every other failure to ErrTokenInvalid.
func (s *jwtService) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage(err.Error())
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("unexpected claims format")
	}

	return claims, nil
}

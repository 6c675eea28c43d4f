package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the claims carried by a session token.
// Subject, issuer, audience and expiry live in RegisteredClaims.
type SessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ProfileID returns the token subject parsed as a profile identifier.
func (c *SessionClaims) ProfileID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for issuing and verifying signed
// session tokens. Tokens are self-contained and never persisted; validity
// is purely a function of signature and expiry at verification time.
type TokenService interface {
	// IssueSession creates a signed session token for the given profile.
	IssueSession(profileID uuid.UUID, name, email string) (string, error)

	// VerifySession checks the signature, issuer, audience and expiry of a
	// token string. Callers get a uniform failure for every invalid token.
	VerifySession(token string) (*SessionClaims, error)

	// SessionDuration returns the configured lifetime of issued sessions.
	SessionDuration() time.Duration
}

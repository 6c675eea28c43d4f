// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fisiohub/config"
	domainerrors "fisiohub/internal/domain/errors"
	"fisiohub/internal/domain/service"
)

const (
	// sessionIssuer and sessionAudience bind tokens to the login flow of
	// this service; verification rejects tokens minted for anything else.
	sessionIssuer   = "login"
	sessionAudience = "physiotherapist"

	sessionTTL = 72 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Shared signing secret, loaded once at startup.
	sessionTTL time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt session secret must be provided")
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: sessionTTL,
	}, nil
}

// IssueSession creates a signed session token carrying the profile identity.
func (s *jwtService) IssueSession(profileID uuid.UUID, name, email string) (string, error) {
	now := time.Now()
	claims := &service.SessionClaims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profileID.String(),
			Issuer:    sessionIssuer,
			Audience:  jwt.ClaimStrings{sessionAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", domainerrors.ErrInternalError.WrapMessage("failed to sign session token")
	}

	return signed, nil
}

// VerifySession checks the validity of a session token string.
// Every failure mode (bad signature, wrong issuer or audience, expiry)
// surfaces as the same domain error so callers cannot tell them apart.
func (s *jwtService) VerifySession(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithAudience(sessionAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("session token verification failed")
	}

	return claims, nil
}

// SessionDuration returns the configured lifetime of issued sessions.
func (s *jwtService) SessionDuration() time.Duration {
	return s.sessionTTL
}

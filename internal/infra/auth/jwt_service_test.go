package auth

import (
	"testing"
	"time"

	"fisiohub/config"
	domainerrors "fisiohub/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_IssueAndVerify_RoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test-secret"))
	require.NoError(t, err)

	profileID := uuid.New()
	token, err := svc.IssueSession(profileID, "Ana Souza", "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifySession(token)
	require.NoError(t, err)

	parsedID, err := claims.ProfileID()
	require.NoError(t, err)
	assert.Equal(t, profileID, parsedID)
	assert.Equal(t, "Ana Souza", claims.Name)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "login", claims.Issuer)
	assert.Contains(t, claims.Audience, "physiotherapist")
}

func TestJWTService_SessionDuration(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test-secret"))
	require.NoError(t, err)

	assert.Equal(t, 72*time.Hour, svc.SessionDuration())
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(""))

	assert.Nil(t, svc)
	assert.Error(t, err)
}

func TestJWTService_VerifySession_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestTokenConfig("secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestTokenConfig("secret-two"))
	require.NoError(t, err)

	token, err := issuer.IssueSession(uuid.New(), "Ana Souza", "ana@example.com")
	require.NoError(t, err)

	claims, err := verifier.VerifySession(token)

	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestJWTService_VerifySession_Garbage(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test-secret"))
	require.NoError(t, err)

	claims, err := svc.VerifySession("not.a.token")

	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

// Tokens minted for a different issuer or audience must be rejected even
// when the signature checks out.
func TestJWTService_VerifySession_WrongIssuerOrAudience(t *testing.T) {
	secret := "test-secret"
	svc, err := NewJWTService(newTestTokenConfig(secret))
	require.NoError(t, err)

	cases := []struct {
		name     string
		issuer   string
		audience string
	}{
		{name: "wrong issuer", issuer: "someone-else", audience: "physiotherapist"},
		{name: "wrong audience", issuer: "login", audience: "patient"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			now := time.Now()
			foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
				Subject:   uuid.New().String(),
				Issuer:    tc.issuer,
				Audience:  jwt.ClaimStrings{tc.audience},
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			})
			signed, err := foreign.SignedString([]byte(secret))
			require.NoError(t, err)

			claims, err := svc.VerifySession(signed)

			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
		})
	}
}

func TestJWTService_VerifySession_Expired(t *testing.T) {
	secret := "test-secret"
	svc, err := NewJWTService(newTestTokenConfig(secret))
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		Issuer:    "login",
		Audience:  jwt.ClaimStrings{"physiotherapist"},
		IssuedAt:  jwt.NewNumericDate(past),
		ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
	})
	signed, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := svc.VerifySession(signed)

	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestJWTService_VerifySession_MissingExpiry(t *testing.T) {
	secret := "test-secret"
	svc, err := NewJWTService(newTestTokenConfig(secret))
	require.NoError(t, err)

	eternal := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  uuid.New().String(),
		Issuer:   "login",
		Audience: jwt.ClaimStrings{"physiotherapist"},
		IssuedAt: jwt.NewNumericDate(time.Now()),
	})
	signed, err := eternal.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := svc.VerifySession(signed)

	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

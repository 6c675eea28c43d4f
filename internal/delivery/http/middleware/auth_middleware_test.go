package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "fisiohub/internal/domain/errors"
	"fisiohub/internal/domain/service"
	mockService "fisiohub/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc *mockService.MockTokenService, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/physiotherapists/some-id", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	}

	middleware := NewAuthMiddleware(tokenSvc)
	err := middleware.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, c, reached
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	profileID := uuid.New()
	claims := &service.SessionClaims{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: profileID.String(),
		},
	}

	tokenSvc.EXPECT().
		VerifySession("valid.session.token").
		Return(claims, nil)

	rec, c, reached := runAuthenticate(t, tokenSvc, "Bearer valid.session.token")

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, profileID, c.Get("profileID"))
	assert.Equal(t, claims, c.Get("sessionClaims"))
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)

	rec, _, reached := runAuthenticate(t, tokenSvc, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)

	rec, _, reached := runAuthenticate(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)

	tokenSvc.EXPECT().
		VerifySession("garbage").
		Return(nil, domainerrors.ErrSessionInvalid.WrapMessage("session token verification failed"))

	rec, _, reached := runAuthenticate(t, tokenSvc, "Bearer garbage")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedSubject(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	claims := &service.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "not-a-uuid",
		},
	}

	tokenSvc.EXPECT().
		VerifySession("odd.subject.token").
		Return(claims, nil)

	rec, _, reached := runAuthenticate(t, tokenSvc, "Bearer odd.subject.token")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

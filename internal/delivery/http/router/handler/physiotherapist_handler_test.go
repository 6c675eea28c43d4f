package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fisiohub/internal/delivery/http/validator"
	"fisiohub/internal/domain/entity"
	mockService "fisiohub/internal/mocks/service"
	mockUsecase "fisiohub/internal/mocks/usecase"
	"fisiohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	handler *PhysiotherapistHandler
	uc      *mockUsecase.MockPhysiotherapistUsecase
	storage *mockService.MockFileStorage
	echo    *echo.Echo
}

func createTestHandler(t *testing.T) handlerFixtures {
	uc := mockUsecase.NewMockPhysiotherapistUsecase(t)
	storage := mockService.NewMockFileStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return handlerFixtures{
		handler: NewPhysiotherapistHandler(uc, storage, logger),
		uc:      uc,
		storage: storage,
		echo:    e,
	}
}

func TestPhysiotherapistHandler_Register_Success(t *testing.T) {
	fx := createTestHandler(t)

	body := `{
		"name": "Ana Souza",
		"email": "ana@example.com",
		"phone": "+55 11 91234-5678",
		"description": "Sports rehabilitation",
		"password": "strong-password",
		"crefito": "3/12345-F",
		"specialties": ["orthopedics"]
	}`

	profile := &entity.Physiotherapist{
		ID:    uuid.New(),
		Name:  "Ana Souza",
		Email: "ana@example.com",
	}

	fx.uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.RegisterOutput{Profile: profile}, nil)

	req := httptest.NewRequest(http.MethodPost, "/physiotherapists/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestPhysiotherapistHandler_Register_MissingFields(t *testing.T) {
	fx := createTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/physiotherapists/register", strings.NewReader(`{"email":"ana@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.Register(c)

	assert.Error(t, err)
}

func TestPhysiotherapistHandler_Login_Success(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{AccessToken: "signed.session.token"}, nil)

	body := `{"email":"ana@example.com","password":"strong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/physiotherapists/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.session.token")
}

func TestPhysiotherapistHandler_ListAll_Success(t *testing.T) {
	fx := createTestHandler(t)

	profiles := []*entity.Physiotherapist{
		{ID: uuid.New(), Name: "Ana Souza", Email: "ana@example.com"},
		{ID: uuid.New(), Name: "Bruno Lima", Email: "bruno@example.com"},
	}

	fx.uc.EXPECT().
		ListAll(mock.Anything).
		Return(profiles, nil)

	req := httptest.NewRequest(http.MethodGet, "/physiotherapists", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.ListAll(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                      `json:"success"`
		Data    []*entity.Physiotherapist `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Len(t, envelope.Data, 2)
}

func TestPhysiotherapistHandler_GetProfile_PassesRawID(t *testing.T) {
	fx := createTestHandler(t)

	profileID := uuid.New()
	profile := &entity.Physiotherapist{ID: profileID, Name: "Ana Souza"}

	fx.uc.EXPECT().
		GetProfile(mock.Anything, profileID.String()).
		Return(profile, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetPath("/physiotherapists/:id")
	c.SetParamNames("id")
	c.SetParamValues(profileID.String())

	err := fx.handler.GetProfile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), profileID.String())
}

func TestPhysiotherapistHandler_UpdateProfile_JSONBody(t *testing.T) {
	fx := createTestHandler(t)

	profileID := uuid.New()
	updated := &entity.Physiotherapist{ID: profileID, Name: "Ana Clara Souza"}

	fx.uc.EXPECT().
		UpdateProfile(mock.Anything, profileID.String(), mock.AnythingOfType("*usecase.UpdateProfileInput")).
		Run(func(ctx context.Context, id string, input *usecase.UpdateProfileInput) {
			require.NotNil(t, input.Name)
			assert.Equal(t, "Ana Clara Souza", *input.Name)
			assert.Nil(t, input.ProfilePicture)
		}).
		Return(updated, nil)

	body := `{"name":"Ana Clara Souza"}`
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetPath("/physiotherapists/:id")
	c.SetParamNames("id")
	c.SetParamValues(profileID.String())

	err := fx.handler.UpdateProfile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPhysiotherapistHandler_UpdateProfile_WithImage(t *testing.T) {
	fx := createTestHandler(t)

	profileID := uuid.New()
	updated := &entity.Physiotherapist{ID: profileID, ProfilePicture: "/uploads/abc.png"}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "Ana Clara Souza"))
	part, err := writer.CreateFormFile("image", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	fx.storage.EXPECT().
		Save(mock.Anything, "avatar.png", mock.Anything).
		Return("/uploads/abc.png", nil)
	fx.uc.EXPECT().
		UpdateProfile(mock.Anything, profileID.String(), mock.AnythingOfType("*usecase.UpdateProfileInput")).
		Run(func(ctx context.Context, id string, input *usecase.UpdateProfileInput) {
			require.NotNil(t, input.ProfilePicture)
			assert.Equal(t, "/uploads/abc.png", *input.ProfilePicture)
		}).
		Return(updated, nil)

	req := httptest.NewRequest(http.MethodPatch, "/", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetPath("/physiotherapists/:id")
	c.SetParamNames("id")
	c.SetParamValues(profileID.String())

	err = fx.handler.UpdateProfile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPhysiotherapistHandler_DeleteProfile_Success(t *testing.T) {
	fx := createTestHandler(t)

	profileID := uuid.New()

	fx.uc.EXPECT().
		DeleteProfile(mock.Anything, profileID.String()).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetPath("/physiotherapists/:id")
	c.SetParamNames("id")
	c.SetParamValues(profileID.String())

	err := fx.handler.DeleteProfile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account deleted successfully")
}

func TestPhysiotherapistHandler_ForgotPassword_Success(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		ForgotPassword(mock.Anything, "ana@example.com").
		Return(nil)

	body := `{"email":"ana@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/physiotherapists/forgot-password", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.ForgotPassword(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPhysiotherapistHandler_ResetPassword_Success(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		ResetPassword(mock.Anything, mock.AnythingOfType("*usecase.ResetPasswordInput")).
		Return(&usecase.LoginOutput{AccessToken: "fresh.session.token"}, nil)

	body := `{"token":"valid.session.token","password":"new-password"}`
	req := httptest.NewRequest(http.MethodPost, "/physiotherapists/reset-password", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.ResetPassword(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fresh.session.token")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

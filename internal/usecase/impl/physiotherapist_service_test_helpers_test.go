package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"fisiohub/internal/domain/entity"
	"fisiohub/internal/domain/service"
	mockRepo "fisiohub/internal/mocks/repository"
	mockService "fisiohub/internal/mocks/service"
	"fisiohub/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// physiotherapistServiceFixtures holds all test dependencies for the profile service tests.
type physiotherapistServiceFixtures struct {
	service      usecase.PhysiotherapistUsecase
	profileRepo  *mockRepo.MockPhysiotherapistRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestPhysiotherapistService(t *testing.T) physiotherapistServiceFixtures {
	profileRepo := mockRepo.NewMockPhysiotherapistRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	service := NewPhysiotherapistService(profileRepo, hasher, tokenService, newDiscardLogger())

	return physiotherapistServiceFixtures{
		service:      service,
		profileRepo:  profileRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func newSessionClaims(profileID uuid.UUID, name, email string) *service.SessionClaims {
	return &service.SessionClaims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: profileID.String(),
		},
	}
}

func newStoredProfile(id uuid.UUID) *entity.Physiotherapist {
	return &entity.Physiotherapist{
		ID:             id,
		Name:           "Ana Souza",
		Email:          "ana@example.com",
		Phone:          "+55 11 91234-5678",
		PasswordHash:   "$2a$12$storedhash",
		Crefito:        "3/12345-F",
		Description:    "Sports rehabilitation",
		ProfilePicture: entity.DefaultProfilePicture,
		Specialties:    []string{"orthopedics"},
		CreatedAt:      time.Now().Add(-24 * time.Hour),
		UpdatedAt:      time.Now().Add(-time.Hour),
	}
}

package impl

import (
	"context"
	"testing"

	"fisiohub/internal/domain/entity"
	"fisiohub/internal/domain/repository"
	"fisiohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPhysiotherapistService_Register_Success(t *testing.T) {
	fx := createTestPhysiotherapistService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:        "Ana Souza",
		Email:       "ana@example.com",
		Phone:       "+55 11 91234-5678",
		Description: "Sports rehabilitation",
		Password:    "strong-password",
		Crefito:     "3/12345-F",
		Specialties: []string{"orthopedics", "pediatrics"},
	}

	assignedID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrProfileNotFound)
	fx.hasher.EXPECT().
		Hash(input.Password).
		Return("$2a$12$hashed", nil)
	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Physiotherapist")).
		Run(func(ctx context.Context, profile *entity.Physiotherapist) {
			profile.ID = assignedID
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, assignedID, output.Profile.ID)
	assert.Equal(t, input.Email, output.Profile.Email)
	assert.Equal(t, "$2a$12$hashed", output.Profile.PasswordHash)
	assert.Equal(t, entity.DefaultProfilePicture, output.Profile.ProfilePicture)
	assert.Equal(t, input.Specialties, output.Profile.Specialties)
}

func TestPhysiotherapistService_Login_Success(t *testing.T) {
	fx := createTestPhysiotherapistService(t)

	ctx := context.Background()
	profileID := uuid.New()
	stored := newStoredProfile(profileID)

	fx.profileRepo.EXPECT().
		FindByEmail(ctx, stored.Email).
		Return(stored, nil)
	fx.hasher.EXPECT().
		Check("strong-password", stored.PasswordHash).
		Return(true)
	fx.tokenService.EXPECT().
		IssueSession(profileID, stored.Name, stored.Email).
		Return("signed.session.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "strong-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.session.token", output.AccessToken)
}

func TestPhysiotherapistService_ListAll_RedactsCredentials(t *testing.T) {
	fx := createTestPhysiotherapistService(t)

	ctx := context.Background()
	first := newStoredProfile(uuid.New())
	second := newStoredProfile(uuid.New())
	second.Email = "bruno@example.com"

	fx.profileRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Physiotherapist{first, second}, nil)

	profiles, err := fx.service.ListAll(ctx)

	require.NoError(t, err)
	require.Len(t, profiles, 2)
	for _, profile := range profiles {
		assert.Empty(t, profile.PasswordHash)
	}
	assert.Equal(t, first.ID, profiles[0].ID)
	assert.Equal(t, "bruno@example.com", profiles[1].Email)
}

func TestPhysiotherapistService_ListAll_Empty(t *testing.T) {
	fx := createTestPhysiotherapistService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Physiotherapist{}, nil)

	profiles, err := fx.service.ListAll(ctx)

	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestPhysiotherapistService_GetProfile_Success(t *testing.T) {
	fx := createTestPhysiotherapistService(t)

	ctx := context.Background()
	profileID := uuid.New()
	stored := newStoredProfile(profileID)

	fx.profileRepo.EXPECT().
		FindByID(ctx, profileID).
		Return(stored, nil)

	profile, err := fx.service.GetProfile(ctx, profileID.String())

	require.NoError(t, err)
	assert.Equal(t, profileID, profile.ID)
	assert.Empty(t, profile.PasswordHash)
}

func TestPhysiotherapistService_UpdateProfile_MergesOntoExisting(t *testing.T) {
	fx := createTestPhysiotherapistService(t)

	ctx := context.Background()
	profileID := uuid.New()
	stored := newStoredProfile(profileID)
	storedHash := stored.PasswordHash
	storedCrefito := stored.Crefito

	newName := "Ana Clara Souza"
	newSpecialties := []string{"neurology"}
	input := &usecase.UpdateProfileInput{
		Name:        &newName,
		Specialties: &newSpecialties,
	}

	fx.profileRepo.EXPECT().
		FindByID(ctx, profileID).
		Return(stored, nil)
	fx.profileRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Physiotherapist")).
		Run(func(ctx context.Context, profile *entity.Physiotherapist) {
			assert.Equal(t, newName, profile.Name)
			assert.Equal(t, newSpecialties, profile.Specialties)
			assert.Equal(t, storedHash, profile.PasswordHash)
			assert.Equal(t, storedCrefito, profile.Crefito)
			assert.Equal(t, "ana@example.com", profile.Email)
		}).
		Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, profileID.String(), input)

	require.NoError(t, err)
	assert.Equal(t, newName, profile.Name)
	assert.Empty(t, profile.PasswordHash)
}

func TestPhysiotherapistService_DeleteProfile_Success(t *testing.T) {
	fx := createTestPhysiotherapistService(t)

	ctx := context.Background()
	profileID := uuid.New()

	fx.profileRepo.EXPECT().
		Delete(ctx, profileID).
		Return(nil)

	err := fx.service.DeleteProfile(ctx, profileID.String())

	require.NoError(t, err)
}

func TestPhysiotherapistService_ForgotPassword_KnownEmail(t *testing.T) {
	fx := createTestPhysiotherapistService(t)

	ctx := context.Background()
	stored := newStoredProfile(uuid.New())

	fx.profileRepo.EXPECT().
		FindByEmail(ctx, stored.Email).
		Return(stored, nil)

	err := fx.service.ForgotPassword(ctx, stored.Email)

	require.NoError(t, err)
}

func TestPhysiotherapistService_ForgotPassword_UnknownEmailStillSucceeds(t *testing.T) {
	fx := createTestPhysiotherapistService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrProfileNotFound)

	err := fx.service.ForgotPassword(ctx, "ghost@example.com")

	require.NoError(t, err)
}

func TestPhysiotherapistService_ResetPassword_Success(t *testing.T) {
	fx := createTestPhysiotherapistService(t)

	ctx := context.Background()
	profileID := uuid.New()
	stored := newStoredProfile(profileID)

	claims := newSessionClaims(profileID, stored.Name, stored.Email)

	fx.tokenService.EXPECT().
		VerifySession("valid.session.token").
		Return(claims, nil)
	fx.profileRepo.EXPECT().
		FindByID(ctx, profileID).
		Return(stored, nil)
	fx.hasher.EXPECT().
		Hash("new-password").
		Return("$2a$12$newhash", nil)
	fx.profileRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Physiotherapist")).
		Run(func(ctx context.Context, profile *entity.Physiotherapist) {
			assert.Equal(t, "$2a$12$newhash", profile.PasswordHash)
		}).
		Return(nil)
	fx.tokenService.EXPECT().
		IssueSession(profileID, stored.Name, stored.Email).
		Return("fresh.session.token", nil)

	output, err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:    "valid.session.token",
		Password: "new-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh.session.token", output.AccessToken)
}

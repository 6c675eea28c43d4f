// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "fisiohub/internal/delivery/context"
	"fisiohub/internal/domain/entity"
	domainerrors "fisiohub/internal/domain/errors"
	"fisiohub/internal/domain/repository"
	"fisiohub/internal/domain/service"
	"fisiohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// physiotherapistService implements the PhysiotherapistUsecase interface.
// It owns all invariant enforcement: email uniqueness, credential secrecy,
// identity resolution and not-found handling.
type physiotherapistService struct {
	profileRepo  repository.PhysiotherapistRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewPhysiotherapistService is the constructor for physiotherapistService.
// It receives all dependencies as interfaces.
func NewPhysiotherapistService(
	profileRepo repository.PhysiotherapistRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.PhysiotherapistUsecase {
	return &physiotherapistService{
		profileRepo:  profileRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *physiotherapistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process. The email
// pre-check is a fast path; the store's unique index is authoritative, so
// a duplicate insert that slips past the pre-check still reports a conflict.
func (srv *physiotherapistService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.profileRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to check existing registration")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newProfile := &entity.Physiotherapist{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Description:    input.Description,
		PasswordHash:   hashedPassword,
		Crefito:        input.Crefito,
		ProfilePicture: entity.DefaultProfilePicture,
		Specialties:    input.Specialties,
	}

	if err := srv.profileRepo.Create(ctx, newProfile); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost the race against a concurrent registration with the
			// same email: exactly one insert wins.
			srv.log(ctx).Warn("Registration lost uniqueness race", slog.String("email", input.Email))

			return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}

		srv.log(ctx).Error("Failed to create profile", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create physiotherapist profile")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("profileID", newProfile.ID))

	return &usecase.RegisterOutput{Profile: newProfile}, nil
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password are distinguished in logs but surface as the same
// invalid-credentials error so the endpoint cannot be used to enumerate
// registered emails.
func (srv *physiotherapistService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	profile, err := srv.profileRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "unknown email"))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load profile for login")
	}

	// bcrypt comparison is CPU-bound; it happens outside any store call.
	if !srv.hasher.Check(input.Password, profile.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.IssueSession(profile.ID, profile.Name, profile.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session", slog.Any("profileID", profile.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login successful", slog.Any("profileID", profile.ID))

	return &usecase.LoginOutput{AccessToken: token}, nil
}

// ListAll returns a snapshot of every profile with credentials stripped.
func (srv *physiotherapistService) ListAll(ctx context.Context) ([]*entity.Physiotherapist, error) {
	profiles, err := srv.profileRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list profiles", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list physiotherapists")
	}

	redacted := make([]*entity.Physiotherapist, 0, len(profiles))
	for _, profile := range profiles {
		redacted = append(redacted, profile.Redacted())
	}

	return redacted, nil
}

// GetProfile resolves the identity and returns the matching profile.
func (srv *physiotherapistService) GetProfile(ctx context.Context, id string) (*entity.Physiotherapist, error) {
	profileID, err := srv.parseProfileID(id)
	if err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("profile not found")
		}

		return nil, errors.Wrap(err, "failed to find physiotherapist")
	}

	return profile.Redacted(), nil
}

// UpdateProfile merges the supplied fields onto the existing record and
// persists the result. Fields absent from the input keep their current
// values; the password hash and crefito are always preserved. The
// fetch-merge-persist sequence is intentionally not atomic: a concurrent
// delete may win against an in-flight update.
func (srv *physiotherapistService) UpdateProfile(ctx context.Context, id string, input *usecase.UpdateProfileInput) (*entity.Physiotherapist, error) {
	profileID, err := srv.parseProfileID(id)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Updating profile", slog.Any("profileID", profileID))

	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("profile not found")
		}

		return nil, errors.Wrap(err, "failed to find physiotherapist for update")
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.Email != nil {
		profile.Email = *input.Email
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.Description != nil {
		profile.Description = *input.Description
	}
	if input.ProfilePicture != nil {
		profile.ProfilePicture = *input.ProfilePicture
	}
	if input.Specialties != nil {
		profile.Specialties = *input.Specialties
	}

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}

		srv.log(ctx).Error("Failed to update profile", slog.Any("profileID", profileID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update physiotherapist profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("profileID", profileID))

	return profile.Redacted(), nil
}

// DeleteProfile removes the profile in a single conditional delete.
// Deleting an identity that is not present succeeds; the operation is
// idempotent from the caller's perspective.
func (srv *physiotherapistService) DeleteProfile(ctx context.Context, id string) error {
	profileID, err := srv.parseProfileID(id)
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Deleting profile", slog.Any("profileID", profileID))

	if err := srv.profileRepo.Delete(ctx, profileID); err != nil {
		srv.log(ctx).Error("Failed to delete profile", slog.Any("profileID", profileID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete physiotherapist profile")
	}

	return nil
}

// ForgotPassword records a password-recovery request. The outcome is
// deliberately identical whether or not the email is registered, so the
// endpoint cannot be used to probe for accounts.
func (srv *physiotherapistService) ForgotPassword(ctx context.Context, email string) error {
	profile, err := srv.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("Password recovery for unknown email", slog.String("email", email))

			return nil
		}

		return errors.Wrap(err, "failed to look up profile for password recovery")
	}

	// TODO: dispatch the recovery e-mail once the mail sender lands.
	srv.log(ctx).Info("Password recovery requested", slog.Any("profileID", profile.ID))

	return nil
}

// ResetPassword replaces the password of the profile identified by a valid
// session token and issues a fresh session.
func (srv *physiotherapistService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.VerifySession(input.Token)
	if err != nil {
		srv.log(ctx).Warn("Password reset with invalid session", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid session token for password reset")
	}

	profileID, err := claims.ProfileID()
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("malformed subject in session token")
	}

	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("profile not found")
		}

		return nil, errors.Wrap(err, "failed to find physiotherapist for password reset")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during reset")
	}

	profile.PasswordHash = hashedPassword
	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to persist new password", slog.Any("profileID", profileID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update password")
	}

	token, err := srv.tokenService.IssueSession(profile.ID, profile.Name, profile.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token after reset")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("profileID", profileID))

	return &usecase.LoginOutput{AccessToken: token}, nil
}

// parseProfileID validates the opaque identifier supplied by the caller.
// Only this boundary knows the native key form; a malformed identifier is
// a validation failure, never a store error.
func (srv *physiotherapistService) parseProfileID(id string) (uuid.UUID, error) {
	profileID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("malformed profile id")
	}

	return profileID, nil
}

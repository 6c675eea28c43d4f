// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"fisiohub/internal/domain/entity"
	domainerrors "fisiohub/internal/domain/errors"
	"fisiohub/internal/domain/repository"
	"fisiohub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// physiotherapistRepository implements repository.PhysiotherapistRepository using GORM.
type physiotherapistRepository struct {
	db *gorm.DB
}

// NewPhysiotherapistRepository is the constructor for physiotherapistRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewPhysiotherapistRepository(db *gorm.DB) repository.PhysiotherapistRepository {
	return &physiotherapistRepository{db: db}
}

// FindByID retrieves a single profile by its unique ID.
func (repo *physiotherapistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Physiotherapist, error) {
	var profileM model.PhysiotherapistModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find physiotherapist by id")
	}

	return toPhysiotherapistDomain(&profileM), nil
}

// FindByEmail retrieves a single profile by its indexed email address.
func (repo *physiotherapistRepository) FindByEmail(ctx context.Context, email string) (*entity.Physiotherapist, error) {
	var profileM model.PhysiotherapistModel

	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find physiotherapist by email")
	}

	return toPhysiotherapistDomain(&profileM), nil
}

// FindAll returns a snapshot of every stored profile in the store's natural order.
func (repo *physiotherapistRepository) FindAll(ctx context.Context) ([]*entity.Physiotherapist, error) {
	var profileModels []*model.PhysiotherapistModel

	if err := repo.db.WithContext(ctx).Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list physiotherapists")
	}

	profiles := make([]*entity.Physiotherapist, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toPhysiotherapistDomain(profileM))
	}

	return profiles, nil
}

// Create persists a new profile. The unique index on email is the
// authoritative uniqueness check; violations surface as ErrDuplicateEmail
// so the caller can report a conflict even when its pre-check passed.
func (repo *physiotherapistRepository) Create(ctx context.Context, profile *entity.Physiotherapist) error {
	profileM := fromPhysiotherapistDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create physiotherapist")
	}

	// Propagate store-assigned values back onto the entity.
	profile.ID = profileM.ID
	if profile.ProfilePicture == "" {
		profile.ProfilePicture = profileM.ProfilePicture
	}
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update replaces the stored record for the profile's ID.
func (repo *physiotherapistRepository) Update(ctx context.Context, profile *entity.Physiotherapist) error {
	profileM := fromPhysiotherapistDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProfileUpdateFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update physiotherapist")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Delete removes the profile with the given ID in a single conditional
// statement. Zero affected rows is success: deletion is idempotent from
// the caller's perspective.
func (repo *physiotherapistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PhysiotherapistModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete physiotherapist")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toPhysiotherapistDomain converts a GORM model to a domain entity.
func toPhysiotherapistDomain(data *model.PhysiotherapistModel) *entity.Physiotherapist {
	if data == nil {
		return nil
	}

	return &entity.Physiotherapist{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		PasswordHash:   data.PasswordHash,
		Crefito:        data.Crefito,
		Description:    data.Description,
		ProfilePicture: data.ProfilePicture,
		Specialties:    data.Specialties,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromPhysiotherapistDomain converts a domain entity to a GORM model for persistence.
func fromPhysiotherapistDomain(data *entity.Physiotherapist) *model.PhysiotherapistModel {
	if data == nil {
		return nil
	}

	return &model.PhysiotherapistModel{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		PasswordHash:   data.PasswordHash,
		Crefito:        data.Crefito,
		Description:    data.Description,
		ProfilePicture: data.ProfilePicture,
		Specialties:    data.Specialties,
		// CreatedAt survives full-record saves; UpdatedAt is left for GORM.
		CreatedAt: data.CreatedAt,
	}
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fisiohub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new physiotherapist.
type RegisterInput struct {
	Name        string   `json:"name" validate:"required,max=50"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Password    string   `json:"password" validate:"required,min=8"`
	Crefito     string   `json:"crefito" validate:"required"`
	Specialties []string `json:"specialties"`
}

// LoginInput defines the data required for a physiotherapist to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput defines the fields that can change through the update
// flow. Nil fields keep their current value; password and crefito are not
// updatable here at all.
type UpdateProfileInput struct {
	Name           *string   `json:"name,omitempty" form:"name" validate:"omitempty,max=50"`
	Email          *string   `json:"email,omitempty" form:"email" validate:"omitempty,email"`
	Phone          *string   `json:"phone,omitempty" form:"phone"`
	Description    *string   `json:"description,omitempty" form:"description"`
	ProfilePicture *string   `json:"profile_picture,omitempty" form:"profile_picture"`
	Specialties    *[]string `json:"specialties,omitempty" form:"specialties"`
}

// ForgotPasswordInput defines the data required to start password recovery.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput defines the data required to reset a password. The
// token must be a valid session token identifying the profile.
type ResetPasswordInput struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created profile.
type RegisterOutput struct {
	Profile *entity.Physiotherapist `json:"physiotherapist"`
}

// LoginOutput returns the issued session token after a successful login.
type LoginOutput struct {
	AccessToken string `json:"access_token"`
}

// PhysiotherapistUsecase defines the interface for profile-related business
// operations. This is the contract the delivery layer depends on.
type PhysiotherapistUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ListAll(ctx context.Context) ([]*entity.Physiotherapist, error)
	GetProfile(ctx context.Context, id string) (*entity.Physiotherapist, error)
	UpdateProfile(ctx context.Context, id string, input *UpdateProfileInput) (*entity.Physiotherapist, error)
	DeleteProfile(ctx context.Context, id string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) (*LoginOutput, error)
}

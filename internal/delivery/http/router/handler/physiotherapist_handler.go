// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"fisiohub/internal/delivery/http/response"
	"fisiohub/internal/domain/service"
	"fisiohub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PhysiotherapistHandler holds dependencies for profile-related handlers.
type PhysiotherapistHandler struct {
	uc      usecase.PhysiotherapistUsecase
	storage service.FileStorage
	logger  *slog.Logger
}

// NewPhysiotherapistHandler is the constructor for PhysiotherapistHandler, injected by Fx.
func NewPhysiotherapistHandler(uc usecase.PhysiotherapistUsecase, storage service.FileStorage, logger *slog.Logger) *PhysiotherapistHandler {
	return &PhysiotherapistHandler{
		uc:      uc,
		storage: storage,
		logger:  logger,
	}
}

// Register handles the registration request.
func (h *PhysiotherapistHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// The password hash never serializes; the entity hides it.
	return response.Success(c, http.StatusCreated, output.Profile, "Professional registered successfully")
}

// Login handles the login request.
func (h *PhysiotherapistHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// ListAll handles the request to list every registered professional.
func (h *PhysiotherapistHandler) ListAll(c echo.Context) error {
	profiles, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "Professionals listed successfully")
}

// GetProfile handles the request to fetch one professional by id.
func (h *PhysiotherapistHandler) GetProfile(c echo.Context) error {
	profile, err := h.uc.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// UpdateProfile handles the profile update request. An attached image, if
// any, is stored first and its reference overrides the profile picture
// field; the core never touches the file itself.
func (h *PhysiotherapistHandler) UpdateProfile(c echo.Context) error {
	// Allocated up front so the form binder can fill it on multipart requests.
	input := new(usecase.UpdateProfileInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		src, err := fileHeader.Open()
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Could not read uploaded image")
		}
		defer src.Close()

		ref, err := h.storage.Save(c.Request().Context(), fileHeader.Filename, src)
		if err != nil {
			h.logger.Error("Failed to store profile picture", slog.Any("error", err))

			return errors.WithStack(err)
		}
		input.ProfilePicture = &ref
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// DeleteProfile handles the account deletion request.
func (h *PhysiotherapistHandler) DeleteProfile(c echo.Context) error {
	if err := h.uc.DeleteProfile(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deleted successfully"}, "Profile deleted")
}

// ForgotPassword handles the password recovery request.
func (h *PhysiotherapistHandler) ForgotPassword(c echo.Context) error {
	var input *usecase.ForgotPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recovery input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "If the e-mail is registered, recovery instructions will be sent"}, "Recovery request accepted")
}

// ResetPassword handles the password reset request.
func (h *PhysiotherapistHandler) ResetPassword(c echo.Context) error {
	var input *usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ResetPassword(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Password reset successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

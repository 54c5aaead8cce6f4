package handler

import (
	"net/http"

	"sentimenta/internal/delivery/http/middleware"
	"sentimenta/internal/delivery/http/response"
	domainerrors "sentimenta/internal/domain/errors"
	"sentimenta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc usecase.AccountUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.AccountUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type updateProfileRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Timezone *string `json:"timezone"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// GetProfile returns the authenticated account's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	output, err := h.uc.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// UpdateProfile applies a partial update to the authenticated account.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}

	output, err := h.uc.UpdateProfile(c.Request().Context(), accountID, &usecase.UpdateProfileInput{
		Username: req.Username,
		Email:    req.Email,
		Timezone: req.Timezone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile updated successfully")
}

// ChangePassword replaces the authenticated account's password.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangePassword(c.Request().Context(), accountID, &usecase.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// DeleteAccount removes the authenticated account and its mood entries.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}

package handler

import (
	"log/slog"

	"roster/internal/delivery/api/response"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AccountHandler serves registration, sessions and credential changes.
type AccountHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for customer self-registration
type RegisterRequest struct {
	PhoneNumber      string `json:"phoneNumber" validate:"required"`
	Password         string `json:"password" validate:"required"`
	Name             string `json:"name" validate:"required"`
	StaffPhoneNumber string `json:"staffPhoneNumber"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents the request body for a password change
type ChangePasswordRequest struct {
	OldPassword  string `json:"oldPassword" validate:"required"`
	NewPassword1 string `json:"newPassword1" validate:"required"`
	NewPassword2 string `json:"newPassword2" validate:"required"`
}

// ChangePhoneNumberRequest represents the request body for a phone number change
type ChangePhoneNumberRequest struct {
	Password        string `json:"password" validate:"required"`
	NewPhoneNumber1 string `json:"newPhoneNumber1" validate:"required"`
	NewPhoneNumber2 string `json:"newPhoneNumber2" validate:"required"`
}

// Register creates a customer account for an anonymous caller.
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		PhoneNumber:      req.PhoneNumber,
		Password:         req.Password,
		Name:             req.Name,
		StaffPhoneNumber: req.StaffPhoneNumber,
	})
	if err != nil {
		return err
	}

	return response.Created(c, "Registration successful", account)
}

// Login issues a session token.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}

	return response.OK(c, "Login successfully", output)
}

// Logout revokes the caller's token.
func (h *AccountHandler) Logout(c echo.Context) error {
	token, err := tokenOf(c)
	if err != nil {
		return err
	}

	if err := h.authUC.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	return response.OK(c, "Logout successfully", nil)
}

// ChangePassword replaces the caller's password and ends the current session.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	token, err := tokenOf(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.authUC.ChangePassword(c.Request().Context(), actor, token, usecase.ChangePasswordInput{
		OldPassword:  req.OldPassword,
		NewPassword1: req.NewPassword1,
		NewPassword2: req.NewPassword2,
	})
	if err != nil {
		return err
	}

	return response.OK(c, "Change password successfully", nil)
}

// ChangePhoneNumber replaces the caller's phone number and ends the current session.
func (h *AccountHandler) ChangePhoneNumber(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	token, err := tokenOf(c)
	if err != nil {
		return err
	}

	var req ChangePhoneNumberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.authUC.ChangePhoneNumber(c.Request().Context(), actor, token, usecase.ChangePhoneNumberInput{
		Password:        req.Password,
		NewPhoneNumber1: req.NewPhoneNumber1,
		NewPhoneNumber2: req.NewPhoneNumber2,
	})
	if err != nil {
		return err
	}

	return response.OK(c, "Change phone number successfully", nil)
}

package handler

import (
	"roster/internal/delivery/api/response"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// UpdateProfileRequest represents the request body for a profile edit. Absent fields stay unchanged.
type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

func (r UpdateProfileRequest) toInput() usecase.UpdateProfileInput {
	return usecase.UpdateProfileInput{
		Name:    r.Name,
		Email:   r.Email,
		Address: r.Address,
	}
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetOwnProfile(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return response.OK(c, "Get profile successfully", profile)
}

// EditProfile updates the caller's profile.
func (h *ProfileHandler) EditProfile(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.profileUC.EditOwnProfile(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return err
	}

	return response.OK(c, "Edit profile successfully", profile)
}

package handler

import (
	"roster/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// ListStaff lists the staff supervised by the caller.
func (h *UserManagementHandler) ListStaff(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	input, err := parseListInput(c, h.maxRecords)
	if err != nil {
		return err
	}

	result, err := h.hierarchyUC.ListStaff(c.Request().Context(), actor, input)
	if err != nil {
		return err
	}

	return response.OK(c, "Get staff list successfully", result)
}

// CreateStaff creates a staff account/profile pair.
func (h *UserManagementHandler) CreateStaff(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req CreateMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.hierarchyUC.CreateStaff(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return err
	}

	return response.Created(c, "Create new staff successfully", account)
}

// GetStaffAccount returns one staff account.
func (h *UserManagementHandler) GetStaffAccount(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	account, err := h.hierarchyUC.GetStaffAccount(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}

	return response.OK(c, "Get staff account successfully", account)
}

// UpdateStaffAccount changes the credentials of one staff account.
func (h *UserManagementHandler) UpdateStaffAccount(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.hierarchyUC.UpdateStaffAccount(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return err
	}

	return response.OK(c, "Update staff account successfully", account)
}

// GetStaffProfile returns one staff profile.
func (h *UserManagementHandler) GetStaffProfile(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	profile, err := h.hierarchyUC.GetStaffProfile(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}

	return response.OK(c, "Get staff profile successfully", profile)
}

// UpdateStaffProfile edits one staff profile.
func (h *UserManagementHandler) UpdateStaffProfile(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.hierarchyUC.UpdateStaffProfile(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return err
	}

	return response.OK(c, "Update staff profile successfully", profile)
}

// AddCustomer attaches customers to a staff.
func (h *UserManagementHandler) AddCustomer(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req AddCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := edgeChangeInput(req.StaffProfileID, req.ListNewSubID)
	if err != nil {
		return err
	}

	if err := h.hierarchyUC.AddSubordinates(c.Request().Context(), actor, input); err != nil {
		return err
	}

	return response.OK(c, "Add customer to staff successfully", nil)
}

// RemoveCustomer detaches customers from a staff.
func (h *UserManagementHandler) RemoveCustomer(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req RemoveCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := edgeChangeInput(req.StaffProfileID, req.ListRemoveSubID)
	if err != nil {
		return err
	}

	result, err := h.hierarchyUC.RemoveSubordinates(c.Request().Context(), actor, input)
	if err != nil {
		return err
	}

	return response.OK(c, "Remove customer from staff successfully", result)
}

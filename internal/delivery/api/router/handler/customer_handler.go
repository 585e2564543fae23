package handler

import (
	"roster/internal/delivery/api/response"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ListCustomers lists customers, optionally filtered by supervising staff.
// A present but empty staffId selects the customers without a staff.
func (h *UserManagementHandler) ListCustomers(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	listInput, err := parseListInput(c, h.maxRecords)
	if err != nil {
		return err
	}

	input := usecase.ListCustomersInput{ListInput: listInput}
	if c.QueryParams().Has(queryStaffID) {
		staffID := c.QueryParam(queryStaffID)
		input.StaffID = &staffID
	}

	result, err := h.hierarchyUC.ListCustomersByStaff(c.Request().Context(), actor, input)
	if err != nil {
		return err
	}

	return response.OK(c, "Get customer list successfully", result)
}

// CreateCustomer creates a customer supervised by the caller.
func (h *UserManagementHandler) CreateCustomer(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req CreateMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.hierarchyUC.CreateCustomer(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return err
	}

	return response.Created(c, "Create new customer successfully", account)
}

// GetCustomerAccount returns one customer account.
func (h *UserManagementHandler) GetCustomerAccount(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	account, err := h.hierarchyUC.GetCustomerAccount(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}

	return response.OK(c, "Get customer account successfully", account)
}

// UpdateCustomerAccount changes the credentials of one customer account.
func (h *UserManagementHandler) UpdateCustomerAccount(c echo.Context) error {
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

	account, err := h.hierarchyUC.UpdateCustomerAccount(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return err
	}

	return response.OK(c, "Update customer account successfully", account)
}

// GetCustomerProfile returns one customer profile.
func (h *UserManagementHandler) GetCustomerProfile(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	profile, err := h.hierarchyUC.GetCustomerProfile(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}

	return response.OK(c, "Get customer profile successfully", profile)
}

// UpdateCustomerProfile edits one customer profile.
func (h *UserManagementHandler) UpdateCustomerProfile(c echo.Context) error {
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

	profile, err := h.hierarchyUC.UpdateCustomerProfile(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return err
	}

	return response.OK(c, "Update customer profile successfully", profile)
}

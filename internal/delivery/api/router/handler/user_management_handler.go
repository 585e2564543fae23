package handler

import (
	"roster/config"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

// UserManagementHandlerParams holds dependencies for UserManagementHandler, injected by Fx.
type UserManagementHandlerParams struct {
	fx.In

	HierarchyUC usecase.HierarchyUsecase
	Config      *config.Config
}

// UserManagementHandler serves the staff and customer administration routes.
type UserManagementHandler struct {
	hierarchyUC usecase.HierarchyUsecase
	maxRecords  int
}

// NewUserManagementHandler is the constructor for UserManagementHandler
func NewUserManagementHandler(params UserManagementHandlerParams) *UserManagementHandler {
	return &UserManagementHandler{
		hierarchyUC: params.HierarchyUC,
		maxRecords:  params.Config.MaxRecords(),
	}
}

// CreateMemberRequest represents the request body for creating a staff or customer
type CreateMemberRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Name        string `json:"name" validate:"required"`
}

func (r CreateMemberRequest) toInput() usecase.CreateMemberInput {
	return usecase.CreateMemberInput{
		PhoneNumber: r.PhoneNumber,
		Password:    r.Password,
		Name:        r.Name,
	}
}

// UpdateAccountRequest represents the request body for a managed credential change
type UpdateAccountRequest struct {
	NewPhoneNumber *string `json:"newPhoneNumber"`
	NewPassword    *string `json:"newPassword"`
}

func (r UpdateAccountRequest) toInput() usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		NewPhoneNumber: r.NewPhoneNumber,
		NewPassword:    r.NewPassword,
	}
}

// AddCustomerRequest represents the request body for attaching customers to a staff
type AddCustomerRequest struct {
	StaffProfileID string   `json:"staffProfileId" validate:"required"`
	ListNewSubID   []string `json:"listNewSubId"`
}

// RemoveCustomerRequest represents the request body for detaching customers from a staff
type RemoveCustomerRequest struct {
	StaffProfileID  string   `json:"staffProfileId" validate:"required"`
	ListRemoveSubID []string `json:"listRemoveSubId"`
}

func edgeChangeInput(staffProfileID string, customerIDs []string) (usecase.EdgeChangeInput, error) {
	staffID, err := parseObjectID("staffProfileId", staffProfileID)
	if err != nil {
		return usecase.EdgeChangeInput{}, err
	}
	ids, err := parseObjectIDs("customer profile id", customerIDs)
	if err != nil {
		return usecase.EdgeChangeInput{}, err
	}

	return usecase.EdgeChangeInput{StaffProfileID: staffID, CustomerProfileIDs: ids}, nil
}

func pathID(c echo.Context) (primitive.ObjectID, error) {
	return parseObjectID("id", c.Param("id"))
}

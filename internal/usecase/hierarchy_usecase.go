package usecase

import (
	"context"

	"roster/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a managed account/profile pair.
type CreateUserInput struct {
	PhoneNumber string
	Password    string
	Name        string
	Role        entity.Role
}

// CreateMemberInput defines the data required by the role-typed creation variants.
type CreateMemberInput struct {
	PhoneNumber string
	Password    string
	Name        string
}

// EdgeChangeInput names a staff profile and the customers to attach to or detach from it.
type EdgeChangeInput struct {
	StaffProfileID     primitive.ObjectID
	CustomerProfileIDs []primitive.ObjectID
}

// ListInput holds the search and 1-indexed pagination parameters of a listing.
type ListInput struct {
	SearchString string
	Page         int64
	Size         int64
}

// ListCustomersInput selects customers by supervising staff.
// A nil StaffID lists every customer the actor may see; an empty one lists unassigned customers.
type ListCustomersInput struct {
	ListInput
	StaffID *string
}

// UpdateAccountInput carries optional credential changes. Nil fields are left untouched.
type UpdateAccountInput struct {
	NewPhoneNumber *string
	NewPassword    *string
}

// UpdateProfileInput carries optional profile changes. Nil fields are left untouched.
type UpdateProfileInput struct {
	Name    *string
	Email   *string
	Address *string
}

// HierarchyUsecase defines the staff/customer management operations.
// Every operation checks the actor's permissions before touching another user's records.
type HierarchyUsecase interface {
	CreateUser(ctx context.Context, actor entity.SessionClaims, input CreateUserInput) (*AccountView, error)
	CreateStaff(ctx context.Context, actor entity.SessionClaims, input CreateMemberInput) (*AccountView, error)
	CreateCustomer(ctx context.Context, actor entity.SessionClaims, input CreateMemberInput) (*AccountView, error)
	BootstrapAdmin(ctx context.Context, input CreateMemberInput) (*AccountView, error)

	AddSubordinates(ctx context.Context, actor entity.SessionClaims, input EdgeChangeInput) error
	RemoveSubordinates(ctx context.Context, actor entity.SessionClaims, input EdgeChangeInput) (string, error)

	ListSubordinates(ctx context.Context, actor entity.SessionClaims, input ListInput, roleFilter entity.Role) (*ListResult, error)
	ListStaff(ctx context.Context, actor entity.SessionClaims, input ListInput) (*ListResult, error)
	ListCustomersByStaff(ctx context.Context, actor entity.SessionClaims, input ListCustomersInput) (*ListResult, error)

	GetAccount(ctx context.Context, actor entity.SessionClaims, accountID primitive.ObjectID) (*AccountView, error)
	GetStaffAccount(ctx context.Context, actor entity.SessionClaims, accountID primitive.ObjectID) (*AccountView, error)
	GetCustomerAccount(ctx context.Context, actor entity.SessionClaims, accountID primitive.ObjectID) (*AccountView, error)
	GetProfile(ctx context.Context, actor entity.SessionClaims, profileID primitive.ObjectID) (*ProfileView, error)
	GetStaffProfile(ctx context.Context, actor entity.SessionClaims, profileID primitive.ObjectID) (*ProfileView, error)
	GetCustomerProfile(ctx context.Context, actor entity.SessionClaims, profileID primitive.ObjectID) (*ProfileView, error)

	UpdateAccount(ctx context.Context, actor entity.SessionClaims, accountID primitive.ObjectID, input UpdateAccountInput) (*AccountView, error)
	UpdateStaffAccount(ctx context.Context, actor entity.SessionClaims, accountID primitive.ObjectID, input UpdateAccountInput) (*AccountView, error)
	UpdateCustomerAccount(ctx context.Context, actor entity.SessionClaims, accountID primitive.ObjectID, input UpdateAccountInput) (*AccountView, error)
	UpdateProfile(ctx context.Context, actor entity.SessionClaims, profileID primitive.ObjectID, input UpdateProfileInput) (*ProfileView, error)
	UpdateStaffProfile(ctx context.Context, actor entity.SessionClaims, profileID primitive.ObjectID, input UpdateProfileInput) (*ProfileView, error)
	UpdateCustomerProfile(ctx context.Context, actor entity.SessionClaims, profileID primitive.ObjectID, input UpdateProfileInput) (*ProfileView, error)
}

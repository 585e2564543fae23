package usecase

import (
	"context"

	"roster/internal/domain/entity"
)

// RegisterInput defines the data required for customer self-registration.
type RegisterInput struct {
	PhoneNumber      string
	Password         string
	Name             string
	StaffPhoneNumber string // Optional introducing staff.
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	PhoneNumber string
	Password    string
}

// ChangePasswordInput defines the data required to change the actor's password.
type ChangePasswordInput struct {
	OldPassword  string
	NewPassword1 string
	NewPassword2 string
}

// ChangePhoneNumberInput defines the data required to change the actor's phone number.
type ChangePhoneNumberInput struct {
	Password        string
	NewPhoneNumber1 string
	NewPhoneNumber2 string
}

// AuthUsecase defines registration, session and credential operations.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AccountView, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a token to its claims. The token must verify and hold a live session.
	Authenticate(ctx context.Context, token string) (*entity.SessionClaims, error)
	// ChangePassword revokes token on success.
	ChangePassword(ctx context.Context, actor entity.SessionClaims, token string, input ChangePasswordInput) error
	// ChangePhoneNumber revokes token on success.
	ChangePhoneNumber(ctx context.Context, actor entity.SessionClaims, token string, input ChangePhoneNumberInput) error
}

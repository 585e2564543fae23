// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"time"

	"roster/internal/domain/entity"
)

// --- Output DTOs ---

// AccountView is the public form of an account. The password hash is never included.
type AccountView struct {
	ID           string               `json:"_id"`
	PhoneNumber  string               `json:"phoneNumber"`
	Role         entity.Role          `json:"role"`
	ProfileID    string               `json:"profileId"`
	FirstCreated *entity.ShortProfile `json:"firstCreated"`
	LastModified *entity.ShortProfile `json:"lastModified"`
}

// ProfileView is the public form of a profile.
type ProfileView struct {
	ID           string               `json:"_id"`
	Name         string               `json:"name"`
	PhoneNumber  string               `json:"phoneNumber"`
	Role         entity.Role          `json:"role"`
	Email        string               `json:"email,omitempty"`
	Address      string               `json:"address,omitempty"`
	AccountID    string               `json:"accountId"`
	LastModified *entity.ShortProfile `json:"lastModified"`
}

// ListResult is one page of a listing. ResultSize is the number of items in the page.
type ListResult struct {
	ResultSize int            `json:"resultSize"`
	Result     []*ProfileView `json:"result"`
}

// LoginOutput carries the issued token and the authenticated account.
type LoginOutput struct {
	Account   *AccountView `json:"account"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

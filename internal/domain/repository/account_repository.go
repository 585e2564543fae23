// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"roster/internal/domain/entity"
	"roster/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicatePhoneNumber is returned when a write would break phone number uniqueness.
	ErrDuplicatePhoneNumber = errors.New("phone number already in use")
)

// AccountRepository defines the persistence operations for accounts.
type AccountRepository interface {
	// FindByID retrieves a single account by its ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Account, error)

	// FindByPhoneNumber retrieves a single account by its phone number.
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Account, error)

	// Create persists a new account. Returns ErrDuplicatePhoneNumber when the phone number is taken.
	Create(ctx context.Context, account *entity.Account) error

	// Update replaces the stored account. Returns ErrAccountNotFound when it does not exist.
	Update(ctx context.Context, account *entity.Account) error
}

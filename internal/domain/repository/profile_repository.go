package repository

import (
	"context"

	"roster/internal/domain/entity"
	"roster/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrProfileNotFound is returned when no profile matches the lookup.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileFilter narrows a profile search. Nil slices mean "no restriction";
// non-nil empty slices match nothing.
type ProfileFilter struct {
	IDs          []primitive.ObjectID // Profile _id must be one of these.
	SuperListIDs []primitive.ObjectID // listSuperProfile must be one of these.
	Role         entity.Role          // Exact role, empty for any.
	Search       string               // Case-insensitive literal substring over phoneNumber, name, email, address.
	Skip         int64
	Limit        int64
}

// ProfileRepository defines the persistence operations for profiles.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Profile, error)

	// FindByIDs retrieves every existing profile among ids in one round trip.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Profile, error)

	// FindByPhoneNumberAndRole retrieves the profile with the given phone number and role.
	FindByPhoneNumberAndRole(ctx context.Context, phoneNumber string, role entity.Role) (*entity.Profile, error)

	// Create persists a new profile. Returns ErrDuplicatePhoneNumber when the phone number is taken.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update replaces the stored profile. Returns ErrProfileNotFound when it does not exist.
	Update(ctx context.Context, profile *entity.Profile) error

	// Search returns the profiles matching filter ordered by ID ascending.
	Search(ctx context.Context, filter ProfileFilter) ([]*entity.Profile, error)
}

package usecase

import (
	"context"

	"roster/internal/domain/entity"
)

// ProfileUsecase defines the operations an actor performs on its own profile.
type ProfileUsecase interface {
	GetOwnProfile(ctx context.Context, actor entity.SessionClaims) (*ProfileView, error)
	EditOwnProfile(ctx context.Context, actor entity.SessionClaims, input UpdateProfileInput) (*ProfileView, error)
}

package impl

import (
	"context"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func requireAdmin(actor entity.SessionClaims) error {
	return entity.RequireRole(actor.Role, entity.RoleAdmin)
}

func requireStaffOrAdmin(actor entity.SessionClaims) error {
	return entity.RequireRole(actor.Role, entity.RoleAdmin, entity.RoleStaff)
}

// requireManage is the role gate for operating on a record of targetRole.
func requireManage(actor entity.SessionClaims, targetRole entity.Role) error {
	caps := actor.Role.Capabilities()
	switch targetRole {
	case entity.RoleCustomer:
		if caps.CanManageCustomers {
			return nil
		}
	case entity.RoleStaff, entity.RoleAdmin:
		if caps.CanManageStaff {
			return nil
		}
	}

	return domainerrors.ErrAccessDenied.WithDetails("role " + actor.Role.String() + " cannot manage " + targetRole.String())
}

// requireMembership is the ownership gate: a role that requires it may only reach
// profiles listed in its own sub-list. Other roles pass unchecked.
func requireMembership(ctx context.Context, repos repository.RepositoryFactory, actor entity.SessionClaims, targetProfileID primitive.ObjectID) error {
	if !actor.Role.Capabilities().RequiresOwnershipCheck {
		return nil
	}

	subList, err := loadSubList(ctx, repos, actor.ProfileID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrProfileNotFound) || errors.Is(err, domainerrors.ErrEdgeListNotFound) {
			return domainerrors.ErrAccessDenied.WithDetails("actor has no subordinates")
		}

		return err
	}
	if !subList.Contains(targetProfileID) {
		return domainerrors.ErrAccessDenied.WithDetails("profile " + targetProfileID.Hex() + " is not managed by actor")
	}

	return nil
}

// authorizeTarget runs both gates for a loaded target profile.
func authorizeTarget(ctx context.Context, repos repository.RepositoryFactory, actor entity.SessionClaims, target *entity.Profile) error {
	if err := requireManage(actor, target.Role); err != nil {
		return err
	}
	if target.Role != entity.RoleCustomer {
		return nil
	}

	return requireMembership(ctx, repos, actor, target.ID)
}

// loadSubList resolves the sub-list edge list of the given profile.
func loadSubList(ctx context.Context, repos repository.RepositoryFactory, profileID primitive.ObjectID) (*entity.EdgeList, error) {
	profile, err := repos.ProfileRepo().FindByID(ctx, profileID)
	if err != nil {
		return nil, translateRepoError(err, "failed to load profile")
	}
	if profile.ListSubProfile == nil {
		return nil, domainerrors.ErrEdgeListNotFound.WithDetails("profile has no sub-list")
	}

	list, err := repos.EdgeListRepo().FindByID(ctx, *profile.ListSubProfile)
	if err != nil {
		return nil, translateRepoError(err, "failed to load sub-list")
	}

	return list, nil
}

package impl

import (
	"context"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// newPair describes an account/profile pair to create.
type newPair struct {
	PhoneNumber  string
	PasswordHash string
	Name         string
	Role         entity.Role
	// EditedBy stamps the action records. The zero value stamps the new profile itself.
	EditedBy primitive.ObjectID
	// Supervisors seed the super-list when the role owns one.
	Supervisors []primitive.ObjectID
	At          time.Time
}

// createPair writes the account, the profile and the edge lists the role owns.
// It must run inside a transaction: the caller is responsible for atomicity.
func createPair(ctx context.Context, repos repository.RepositoryFactory, spec newPair) (*entity.Account, *entity.Profile, error) {
	accountID := primitive.NewObjectID()
	profileID := primitive.NewObjectID()

	editor := spec.EditedBy
	if editor.IsZero() {
		editor = profileID
	}
	record := entity.NewActionRecord(editor, spec.At)
	caps := spec.Role.Capabilities()

	profile := &entity.Profile{
		ID:           profileID,
		Name:         spec.Name,
		PhoneNumber:  spec.PhoneNumber,
		Role:         spec.Role,
		AccountID:    accountID,
		LastModified: record,
	}
	account := &entity.Account{
		ID:           accountID,
		PhoneNumber:  spec.PhoneNumber,
		PasswordHash: spec.PasswordHash,
		Role:         spec.Role,
		ProfileID:    profileID,
		FirstCreated: record,
		LastModified: record,
	}
	if err := checkDocument(account); err != nil {
		return nil, nil, err
	}
	if err := checkDocument(profile); err != nil {
		return nil, nil, err
	}

	if caps.OwnsSuperList {
		superList := entity.NewEdgeList(spec.Supervisors...)
		if err := repos.EdgeListRepo().Create(ctx, superList); err != nil {
			return nil, nil, translateRepoError(err, "failed to create super-list")
		}
		profile.ListSuperProfile = &superList.ID
	}
	if caps.OwnsSubList {
		subList := entity.NewEdgeList()
		if err := repos.EdgeListRepo().Create(ctx, subList); err != nil {
			return nil, nil, translateRepoError(err, "failed to create sub-list")
		}
		profile.ListSubProfile = &subList.ID
	}

	if err := repos.AccountRepo().Create(ctx, account); err != nil {
		return nil, nil, translateRepoError(err, "failed to create account")
	}
	if err := repos.ProfileRepo().Create(ctx, profile); err != nil {
		return nil, nil, translateRepoError(err, "failed to create profile")
	}

	return account, profile, nil
}

// validatable is a document that checks its own stored fields.
type validatable interface {
	Validate() (field string, ok bool)
}

// checkDocument rejects a document that would be written with an invalid field.
func checkDocument(doc validatable) error {
	if field, ok := doc.Validate(); !ok {
		return domainerrors.ErrValidationFailed.WithDetails(field + " is invalid")
	}

	return nil
}

// link adds the supervision edge on both sides and reports whether either side changed.
func link(ctx context.Context, lists repository.EdgeListRepository, supervisor, subordinate *entity.Profile) (bool, error) {
	subChanged, err := lists.AddID(ctx, *supervisor.ListSubProfile, subordinate.ID)
	if err != nil {
		return false, translateRepoError(err, "failed to update sub-list")
	}
	superChanged, err := lists.AddID(ctx, *subordinate.ListSuperProfile, supervisor.ID)
	if err != nil {
		return false, translateRepoError(err, "failed to update super-list")
	}

	return subChanged || superChanged, nil
}

// unlink removes the supervision edge on both sides and reports whether either side changed.
func unlink(ctx context.Context, lists repository.EdgeListRepository, supervisor, subordinate *entity.Profile) (bool, error) {
	subChanged, err := lists.RemoveID(ctx, *supervisor.ListSubProfile, subordinate.ID)
	if err != nil {
		return false, translateRepoError(err, "failed to update sub-list")
	}
	superChanged, err := lists.RemoveID(ctx, *subordinate.ListSuperProfile, supervisor.ID)
	if err != nil {
		return false, translateRepoError(err, "failed to update super-list")
	}

	return subChanged || superChanged, nil
}

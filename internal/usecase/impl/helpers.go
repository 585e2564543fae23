package impl

import (
	"context"
	"strings"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/errors"
	"roster/internal/usecase"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// repoSet exposes directly injected repositories as a RepositoryFactory so that read paths
// share helpers with transactional paths.
type repoSet struct {
	accounts repository.AccountRepository
	profiles repository.ProfileRepository
	lists    repository.EdgeListRepository
}

func (r repoSet) AccountRepo() repository.AccountRepository   { return r.accounts }
func (r repoSet) ProfileRepo() repository.ProfileRepository   { return r.profiles }
func (r repoSet) EdgeListRepo() repository.EdgeListRepository { return r.lists }

// translateRepoError maps repository sentinels onto the domain taxonomy. Typed errors pass
// through unchanged and anything else becomes a DatabaseExecuteError.
func translateRepoError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrAccountNotFound):
		return domainerrors.ErrAccountNotFound
	case errors.Is(err, repository.ErrProfileNotFound):
		return domainerrors.ErrProfileNotFound
	case errors.Is(err, repository.ErrEdgeListNotFound):
		return domainerrors.ErrEdgeListNotFound
	case errors.Is(err, repository.ErrDuplicatePhoneNumber):
		return domainerrors.ErrPhoneNumberExists
	}

	return domainerrors.Ensure(err, op)
}

func validatePhoneNumber(phoneNumber string) error {
	if !entity.ValidPhoneNumber(phoneNumber) {
		return domainerrors.ErrValidationFailed.WithDetails("phoneNumber must be 9 to 11 characters")
	}

	return nil
}

func validateName(name string) error {
	if !entity.ValidName(name) {
		return domainerrors.ErrValidationFailed.WithDetails("name must be longer than 5 characters")
	}

	return nil
}

func validatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("password is required")
	}

	return nil
}

func validateProfileInput(input usecase.UpdateProfileInput) error {
	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return err
		}
	}
	if input.Email != nil && !entity.ValidEmail(*input.Email) {
		return domainerrors.ErrValidationFailed.WithDetails("email is invalid")
	}

	return nil
}

// ensurePhoneNumberFree fails with ErrPhoneNumberExists when another account holds phoneNumber.
func ensurePhoneNumberFree(ctx context.Context, accounts repository.AccountRepository, phoneNumber string, owner primitive.ObjectID) error {
	existing, err := accounts.FindByPhoneNumber(ctx, phoneNumber)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil
	}
	if err != nil {
		return translateRepoError(err, "failed to check phone number")
	}
	if existing.ID != owner {
		return domainerrors.ErrPhoneNumberExists
	}

	return nil
}

// shortProfiles resolves the editors of records to their display form in one query.
// Editors that no longer exist resolve to nil.
func shortProfiles(ctx context.Context, profiles repository.ProfileRepository, records ...entity.ActionRecord) ([]*entity.ShortProfile, error) {
	ids := make([]primitive.ObjectID, 0, len(records))
	for _, record := range records {
		if !record.EditedBy.IsZero() {
			ids = append(ids, record.EditedBy)
		}
	}

	editors, err := profiles.FindByIDs(ctx, ids)
	if err != nil {
		return nil, translateRepoError(err, "failed to resolve editors")
	}
	byID := make(map[primitive.ObjectID]*entity.Profile, len(editors))
	for _, editor := range editors {
		byID[editor.ID] = editor
	}

	result := make([]*entity.ShortProfile, len(records))
	for i, record := range records {
		if editor, ok := byID[record.EditedBy]; ok {
			result[i] = &entity.ShortProfile{Name: editor.Name, Role: editor.Role, Date: record.EditedTime}
		}
	}

	return result, nil
}

func accountView(ctx context.Context, profiles repository.ProfileRepository, account *entity.Account) (*usecase.AccountView, error) {
	shorts, err := shortProfiles(ctx, profiles, account.FirstCreated, account.LastModified)
	if err != nil {
		return nil, err
	}

	return &usecase.AccountView{
		ID:           account.ID.Hex(),
		PhoneNumber:  account.PhoneNumber,
		Role:         account.Role,
		ProfileID:    account.ProfileID.Hex(),
		FirstCreated: shorts[0],
		LastModified: shorts[1],
	}, nil
}

func profileView(ctx context.Context, profiles repository.ProfileRepository, profile *entity.Profile) (*usecase.ProfileView, error) {
	shorts, err := shortProfiles(ctx, profiles, profile.LastModified)
	if err != nil {
		return nil, err
	}
	view := listedProfileView(profile)
	view.LastModified = shorts[0]

	return view, nil
}

// listedProfileView is the profile view used in listings, where editors are not resolved.
func listedProfileView(profile *entity.Profile) *usecase.ProfileView {
	return &usecase.ProfileView{
		ID:          profile.ID.Hex(),
		Name:        profile.Name,
		PhoneNumber: profile.PhoneNumber,
		Role:        profile.Role,
		Email:       profile.Email,
		Address:     profile.Address,
		AccountID:   profile.AccountID.Hex(),
	}
}

func toProfileChanges(input usecase.UpdateProfileInput) entity.ProfileChanges {
	return entity.ProfileChanges{Name: input.Name, Email: input.Email, Address: input.Address}
}

// profileViews builds the views of a listing, resolving every editor in one query.
func profileViews(ctx context.Context, profiles repository.ProfileRepository, list []*entity.Profile) ([]*usecase.ProfileView, error) {
	records := make([]entity.ActionRecord, len(list))
	for i, profile := range list {
		records[i] = profile.LastModified
	}

	shorts, err := shortProfiles(ctx, profiles, records...)
	if err != nil {
		return nil, err
	}

	views := make([]*usecase.ProfileView, len(list))
	for i, profile := range list {
		views[i] = listedProfileView(profile)
		views[i].LastModified = shorts[i]
	}

	return views, nil
}

// applyCredentialChanges updates the password and the phone number of account. A phone number
// change is mirrored onto the paired profile. Both documents are stamped with record when they change.
func applyCredentialChanges(
	ctx context.Context,
	repos repository.RepositoryFactory,
	hasher service.PasswordHasher,
	account *entity.Account,
	input usecase.UpdateAccountInput,
	record entity.ActionRecord,
) (bool, error) {
	changed := false

	if input.NewPassword != nil && !hasher.Check(*input.NewPassword, account.PasswordHash) {
		hash, err := hasher.Hash(*input.NewPassword)
		if err != nil {
			return false, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
		}
		account.PasswordHash = hash
		changed = true
	}

	if input.NewPhoneNumber != nil && *input.NewPhoneNumber != account.PhoneNumber {
		if err := ensurePhoneNumberFree(ctx, repos.AccountRepo(), *input.NewPhoneNumber, account.ID); err != nil {
			return false, err
		}

		profile, err := repos.ProfileRepo().FindByID(ctx, account.ProfileID)
		if err != nil {
			return false, translateRepoError(err, "failed to load paired profile")
		}
		profile.PhoneNumber = *input.NewPhoneNumber
		profile.Stamp(record)
		if err := repos.ProfileRepo().Update(ctx, profile); err != nil {
			return false, translateRepoError(err, "failed to update paired profile")
		}

		account.PhoneNumber = *input.NewPhoneNumber
		changed = true
	}

	if !changed {
		return false, nil
	}

	account.Stamp(record)
	if err := repos.AccountRepo().Update(ctx, account); err != nil {
		return false, translateRepoError(err, "failed to update account")
	}

	return true, nil
}

// applyProfileChanges writes the field diff of input onto profile and stamps it when anything changed.
func applyProfileChanges(
	ctx context.Context,
	repos repository.RepositoryFactory,
	profile *entity.Profile,
	input usecase.UpdateProfileInput,
	record entity.ActionRecord,
) error {
	if !profile.Apply(toProfileChanges(input)) {
		return nil
	}

	profile.Stamp(record)
	if err := repos.ProfileRepo().Update(ctx, profile); err != nil {
		return translateRepoError(err, "failed to update profile")
	}

	return nil
}

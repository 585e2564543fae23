// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"roster/config"
	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/errors"
	"roster/internal/usecase"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

// RemoveSubordinatesResult is the data returned by a successful RemoveSubordinates.
const RemoveSubordinatesResult = "Remove success"

// hierarchyService implements the HierarchyUsecase interface.
type hierarchyService struct {
	txManager  repository.TransactionManager
	repos      repoSet
	hasher     service.PasswordHasher
	maxRecords int64
	now        func() time.Time
	logger     *slog.Logger
}

// HierarchyServiceParams holds dependencies for HierarchyService, injected by Fx.
type HierarchyServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	ProfileRepo  repository.ProfileRepository
	EdgeListRepo repository.EdgeListRepository
	Hasher       service.PasswordHasher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewHierarchyService is the constructor for hierarchyService.
func NewHierarchyService(params HierarchyServiceParams) usecase.HierarchyUsecase {
	return &hierarchyService{
		txManager: params.TxManager,
		repos: repoSet{
			accounts: params.AccountRepo,
			profiles: params.ProfileRepo,
			lists:    params.EdgeListRepo,
		},
		hasher:     params.Hasher,
		maxRecords: int64(params.Config.MaxRecords()),
		now:        time.Now,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *hierarchyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Creation ---

// CreateUser creates a staff or customer pair supervised by the actor.
func (srv *hierarchyService) CreateUser(ctx context.Context, actor entity.SessionClaims, input usecase.CreateUserInput) (*usecase.AccountView, error) {
	if input.Role != entity.RoleStaff && input.Role != entity.RoleCustomer {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be staff or customer")
	}
	if err := requireManage(actor, input.Role); err != nil {
		return nil, err
	}
	if err := validateNewMember(input.PhoneNumber, input.Password, input.Name); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	var view *usecase.AccountView
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := ensurePhoneNumberFree(ctx, repos.AccountRepo(), input.PhoneNumber, primitive.NilObjectID); err != nil {
			return err
		}

		creator, err := repos.ProfileRepo().FindByID(ctx, actor.ProfileID)
		if err != nil {
			return translateRepoError(err, "failed to load creator profile")
		}
		if creator.ListSubProfile == nil {
			return domainerrors.ErrEdgeListNotFound.WithDetails("creator has no sub-list")
		}

		account, profile, err := createPair(ctx, repos, newPair{
			PhoneNumber:  input.PhoneNumber,
			PasswordHash: hash,
			Name:         input.Name,
			Role:         input.Role,
			EditedBy:     actor.ProfileID,
			Supervisors:  []primitive.ObjectID{actor.ProfileID},
			At:           srv.now(),
		})
		if err != nil {
			return err
		}

		if _, err := repos.EdgeListRepo().AddID(ctx, *creator.ListSubProfile, profile.ID); err != nil {
			return translateRepoError(err, "failed to attach new profile to creator")
		}

		view, err = accountView(ctx, repos.ProfileRepo(), account)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.Any("role", input.Role), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.Any("role", input.Role), slog.String("accountID", view.ID))

	return view, nil
}

// CreateStaff creates a staff pair. Admin only.
func (srv *hierarchyService) CreateStaff(ctx context.Context, actor entity.SessionClaims, input usecase.CreateMemberInput) (*usecase.AccountView, error) {
	return srv.CreateUser(ctx, actor, usecase.CreateUserInput{
		PhoneNumber: input.PhoneNumber,
		Password:    input.Password,
		Name:        input.Name,
		Role:        entity.RoleStaff,
	})
}

// CreateCustomer creates a customer pair supervised by the actor. Staff or admin.
func (srv *hierarchyService) CreateCustomer(ctx context.Context, actor entity.SessionClaims, input usecase.CreateMemberInput) (*usecase.AccountView, error) {
	return srv.CreateUser(ctx, actor, usecase.CreateUserInput{
		PhoneNumber: input.PhoneNumber,
		Password:    input.Password,
		Name:        input.Name,
		Role:        entity.RoleCustomer,
	})
}

// BootstrapAdmin creates a root admin pair. It has a sub-list, no super-list, and stamps itself.
func (srv *hierarchyService) BootstrapAdmin(ctx context.Context, input usecase.CreateMemberInput) (*usecase.AccountView, error) {
	if err := validateNewMember(input.PhoneNumber, input.Password, input.Name); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	var view *usecase.AccountView
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := ensurePhoneNumberFree(ctx, repos.AccountRepo(), input.PhoneNumber, primitive.NilObjectID); err != nil {
			return err
		}

		account, _, err := createPair(ctx, repos, newPair{
			PhoneNumber:  input.PhoneNumber,
			PasswordHash: hash,
			Name:         input.Name,
			Role:         entity.RoleAdmin,
			At:           srv.now(),
		})
		if err != nil {
			return err
		}

		view, err = accountView(ctx, repos.ProfileRepo(), account)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to bootstrap admin")
	}

	srv.log(ctx).Info("Admin bootstrapped", slog.String("accountID", view.ID))

	return view, nil
}

func validateNewMember(phoneNumber, password, name string) error {
	if err := validatePhoneNumber(phoneNumber); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	return validateName(name)
}

// --- Edge mutation ---

type edgeOp func(ctx context.Context, lists repository.EdgeListRepository, supervisor, subordinate *entity.Profile) (bool, error)

// AddSubordinates attaches customers to a staff on both sides of the edge. Admin only.
func (srv *hierarchyService) AddSubordinates(ctx context.Context, actor entity.SessionClaims, input usecase.EdgeChangeInput) error {
	if err := srv.changeEdges(ctx, actor, input, link); err != nil {
		return errors.Wrap(err, "failed to add subordinates")
	}

	return nil
}

// RemoveSubordinates detaches customers from a staff on both sides of the edge. Admin only.
func (srv *hierarchyService) RemoveSubordinates(ctx context.Context, actor entity.SessionClaims, input usecase.EdgeChangeInput) (string, error) {
	if err := srv.changeEdges(ctx, actor, input, unlink); err != nil {
		return "", errors.Wrap(err, "failed to remove subordinates")
	}

	return RemoveSubordinatesResult, nil
}

func (srv *hierarchyService) changeEdges(ctx context.Context, actor entity.SessionClaims, input usecase.EdgeChangeInput, op edgeOp) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if input.CustomerProfileIDs == nil {
		return domainerrors.ErrInvalidArray
	}
	ids := uniqueIDs(input.CustomerProfileIDs)

	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		profiles := repos.ProfileRepo()

		staff, err := profiles.FindByID(ctx, input.StaffProfileID)
		if err != nil {
			return translateRepoError(err, "failed to load staff profile")
		}
		if staff.Role != entity.RoleStaff {
			return domainerrors.ErrProfileNotFound.WithDetails("profile " + staff.ID.Hex() + " is not a staff")
		}
		if staff.ListSubProfile == nil {
			return domainerrors.ErrEdgeListNotFound.WithDetails("staff has no sub-list")
		}

		customers, err := resolveCustomers(ctx, profiles, ids)
		if err != nil {
			return err
		}

		record := entity.NewActionRecord(actor.ProfileID, srv.now())
		changedAny := false
		for _, customer := range customers {
			changed, err := op(ctx, repos.EdgeListRepo(), staff, customer)
			if err != nil {
				return err
			}
			if !changed {
				continue
			}

			customer.Stamp(record)
			if err := profiles.Update(ctx, customer); err != nil {
				return translateRepoError(err, "failed to stamp customer profile")
			}
			changedAny = true
		}

		if !changedAny {
			return nil
		}

		staff.Stamp(record)
		if err := profiles.Update(ctx, staff); err != nil {
			return translateRepoError(err, "failed to stamp staff profile")
		}

		srv.log(ctx).Info("Supervision edges changed", slog.String("staffProfileID", staff.ID.Hex()), slog.Int("candidates", len(customers)))

		return nil
	})
}

// resolveCustomers loads every candidate in one query and checks it before anything is mutated.
func resolveCustomers(ctx context.Context, profiles repository.ProfileRepository, ids []primitive.ObjectID) ([]*entity.Profile, error) {
	found, err := profiles.FindByIDs(ctx, ids)
	if err != nil {
		return nil, translateRepoError(err, "failed to load candidate profiles")
	}
	byID := make(map[primitive.ObjectID]*entity.Profile, len(found))
	for _, profile := range found {
		byID[profile.ID] = profile
	}

	customers := make([]*entity.Profile, 0, len(ids))
	for _, id := range ids {
		customer, ok := byID[id]
		if !ok {
			return nil, domainerrors.ErrProfileNotFound.WithDetails(id.Hex())
		}
		if customer.Role != entity.RoleCustomer {
			return nil, domainerrors.ErrValidationFailed.WithDetails("profile " + id.Hex() + " is not a customer")
		}
		if customer.ListSuperProfile == nil {
			return nil, domainerrors.ErrEdgeListNotFound.WithDetails("customer " + id.Hex() + " has no super-list")
		}
		customers = append(customers, customer)
	}

	return customers, nil
}

func uniqueIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	result := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}

// --- Listing ---

// ListSubordinates lists the profiles of roleFilter in the actor's own sub-list.
func (srv *hierarchyService) ListSubordinates(ctx context.Context, actor entity.SessionClaims, input usecase.ListInput, roleFilter entity.Role) (*usecase.ListResult, error) {
	if !roleFilter.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("roleFilter is invalid")
	}
	if !actor.Role.Capabilities().OwnsSubList {
		return nil, domainerrors.ErrAccessDenied.WithDetails("role " + actor.Role.String() + " has no subordinates")
	}

	filter, err := srv.pageFilter(input)
	if err != nil {
		return nil, err
	}

	subList, err := loadSubList(ctx, srv.repos, actor.ProfileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve subordinates")
	}
	filter.IDs = nonNilIDs(subList.IDs)
	filter.Role = roleFilter

	return srv.search(ctx, filter)
}

// ListStaff lists the staff in the actor's sub-list. Admin only.
func (srv *hierarchyService) ListStaff(ctx context.Context, actor entity.SessionClaims, input usecase.ListInput) (*usecase.ListResult, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	return srv.ListSubordinates(ctx, actor, input, entity.RoleStaff)
}

// ListCustomersByStaff lists customers by supervising staff. Staff actors only see their own customers.
func (srv *hierarchyService) ListCustomersByStaff(ctx context.Context, actor entity.SessionClaims, input usecase.ListCustomersInput) (*usecase.ListResult, error) {
	if err := requireStaffOrAdmin(actor); err != nil {
		return nil, err
	}

	filter, err := srv.pageFilter(input.ListInput)
	if err != nil {
		return nil, err
	}
	filter.Role = entity.RoleCustomer

	staffID := input.StaffID
	if actor.Role.Capabilities().RequiresOwnershipCheck {
		own := actor.ProfileID.Hex()
		if staffID == nil {
			staffID = &own
		} else if *staffID != own {
			return nil, domainerrors.ErrAccessDenied.WithDetails("staff may only list their own customers")
		}
	}

	switch {
	case staffID == nil:
		// Every customer.
	case *staffID == "":
		empties, err := srv.repos.lists.FindEmptyIDs(ctx)
		if err != nil {
			return nil, errors.Wrap(translateRepoError(err, "failed to find empty edge lists"), "failed to list customers")
		}
		filter.SuperListIDs = nonNilIDs(empties)
	default:
		id, err := primitive.ObjectIDFromHex(*staffID)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("staffId is invalid")
		}
		staff, err := srv.repos.profiles.FindByID(ctx, id)
		if err != nil {
			return nil, errors.Wrap(translateRepoError(err, "failed to load staff profile"), "failed to list customers")
		}
		if staff.Role != entity.RoleStaff {
			return nil, domainerrors.ErrProfileNotFound.WithDetails("profile " + id.Hex() + " is not a staff")
		}
		subList, err := loadSubList(ctx, srv.repos, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list customers")
		}
		filter.IDs = nonNilIDs(subList.IDs)
	}

	return srv.search(ctx, filter)
}

// pageFilter validates 1-indexed pagination and clamps size to the configured maximum.
func (srv *hierarchyService) pageFilter(input usecase.ListInput) (repository.ProfileFilter, error) {
	if input.Page < 1 {
		return repository.ProfileFilter{}, domainerrors.ErrValidationFailed.WithDetails("page must be at least 1")
	}
	if input.Size < 1 {
		return repository.ProfileFilter{}, domainerrors.ErrValidationFailed.WithDetails("size must be at least 1")
	}

	size := min(input.Size, srv.maxRecords)
	skip := int64(math.MaxInt64)
	if input.Page-1 <= math.MaxInt64/size {
		skip = (input.Page - 1) * size
	}

	return repository.ProfileFilter{
		Search: strings.TrimSpace(input.SearchString),
		Skip:   skip,
		Limit:  size,
	}, nil
}

func (srv *hierarchyService) search(ctx context.Context, filter repository.ProfileFilter) (*usecase.ListResult, error) {
	profiles, err := srv.repos.profiles.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(translateRepoError(err, "failed to search profiles"), "failed to list profiles")
	}

	views, err := profileViews(ctx, srv.repos.profiles, profiles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return &usecase.ListResult{ResultSize: len(views), Result: views}, nil
}

func nonNilIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	if ids == nil {
		return []primitive.ObjectID{}
	}

	return ids
}

// --- Reads ---

// GetAccount returns any account the actor may manage.
func (srv *hierarchyService) GetAccount(ctx context.Context, actor entity.SessionClaims, accountID primitive.ObjectID) (*usecase.AccountView, error) {
	return srv.getAccount(ctx, actor, accountID, "")
}

// GetStaffAccount returns a staff account. Admin only.
func (srv *hierarchyService) GetStaffAccount(ctx context.Context, actor entity.SessionClaims, accountID primitive.ObjectID) (*usecase.AccountView, error) {
	return srv.getAccount(ctx, actor, accountID, entity.RoleStaff)
}

// GetCustomerAccount returns a customer account. Staff may only read their own customers.
func (srv *hierarchyService) GetCustomerAccount(ctx context.Context, actor entity.SessionClaims, accountID primitive.ObjectID) (*usecase.AccountView, error) {
	return srv.getAccount(ctx, actor, accountID, entity.RoleCustomer)
}

func (srv *hierarchyService) getAccount(ctx context.Context, actor entity.SessionClaims, accountID primitive.ObjectID, expected entity.Role) (*usecase.AccountView, error) {
	account, err := loadAuthorizedAccount(ctx, srv.repos, actor, accountID, expected)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}

	view, err := accountView(ctx, srv.repos.profiles, account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}

	return view, nil
}

// GetProfile returns any profile the actor may manage.
func (srv *hierarchyService) GetProfile(ctx context.Context, actor entity.SessionClaims, profileID primitive.ObjectID) (*usecase.ProfileView, error) {
	return srv.getProfile(ctx, actor, profileID, "")
}

// GetStaffProfile returns a staff profile. Admin only.
func (srv *hierarchyService) GetStaffProfile(ctx context.Context, actor entity.SessionClaims, profileID primitive.ObjectID) (*usecase.ProfileView, error) {
	return srv.getProfile(ctx, actor, profileID, entity.RoleStaff)
}

// GetCustomerProfile returns a customer profile. Staff may only read their own customers.
func (srv *hierarchyService) GetCustomerProfile(ctx context.Context, actor entity.SessionClaims, profileID primitive.ObjectID) (*usecase.ProfileView, error) {
	return srv.getProfile(ctx, actor, profileID, entity.RoleCustomer)
}

func (srv *hierarchyService) getProfile(ctx context.Context, actor entity.SessionClaims, profileID primitive.ObjectID, expected entity.Role) (*usecase.ProfileView, error) {
	profile, err := loadAuthorizedProfile(ctx, srv.repos, actor, profileID, expected)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	view, err := profileView(ctx, srv.repos.profiles, profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return view, nil
}

// loadAuthorizedAccount loads an account after the role gate and before the ownership gate.
// A non-empty expected role also requires the account to have that role.
func loadAuthorizedAccount(ctx context.Context, repos repository.RepositoryFactory, actor entity.SessionClaims, accountID primitive.ObjectID, expected entity.Role) (*entity.Account, error) {
	if expected != "" {
		if err := requireManage(actor, expected); err != nil {
			return nil, err
		}
	}

	account, err := repos.AccountRepo().FindByID(ctx, accountID)
	if err != nil {
		return nil, translateRepoError(err, "failed to load account")
	}
	if expected != "" && account.Role != expected {
		return nil, domainerrors.ErrAccountNotFound
	}
	if err := requireManage(actor, account.Role); err != nil {
		return nil, err
	}
	if account.Role == entity.RoleCustomer {
		if err := requireMembership(ctx, repos, actor, account.ProfileID); err != nil {
			return nil, err
		}
	}

	return account, nil
}

// loadAuthorizedProfile loads a profile after both gates when the expected role is known,
// and checks the gates against the loaded role otherwise.
func loadAuthorizedProfile(ctx context.Context, repos repository.RepositoryFactory, actor entity.SessionClaims, profileID primitive.ObjectID, expected entity.Role) (*entity.Profile, error) {
	if expected != "" {
		if err := requireManage(actor, expected); err != nil {
			return nil, err
		}
		if expected == entity.RoleCustomer {
			if err := requireMembership(ctx, repos, actor, profileID); err != nil {
				return nil, err
			}
		}
	}

	profile, err := repos.ProfileRepo().FindByID(ctx, profileID)
	if err != nil {
		return nil, translateRepoError(err, "failed to load profile")
	}
	if expected != "" {
		if profile.Role != expected {
			return nil, domainerrors.ErrProfileNotFound
		}

		return profile, nil
	}
	if err := authorizeTarget(ctx, repos, actor, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// --- Updates ---

// UpdateAccount changes the credentials of any account the actor may manage.
func (srv *hierarchyService) UpdateAccount(ctx context.Context, actor entity.SessionClaims, accountID primitive.ObjectID, input usecase.UpdateAccountInput) (*usecase.AccountView, error) {
	return srv.updateAccount(ctx, actor, accountID, input, "")
}

// UpdateStaffAccount changes the credentials of a staff account. Admin only.
func (srv *hierarchyService) UpdateStaffAccount(ctx context.Context, actor entity.SessionClaims, accountID primitive.ObjectID, input usecase.UpdateAccountInput) (*usecase.AccountView, error) {
	return srv.updateAccount(ctx, actor, accountID, input, entity.RoleStaff)
}

// UpdateCustomerAccount changes the credentials of a customer account. Staff may only update their own customers.
func (srv *hierarchyService) UpdateCustomerAccount(ctx context.Context, actor entity.SessionClaims, accountID primitive.ObjectID, input usecase.UpdateAccountInput) (*usecase.AccountView, error) {
	return srv.updateAccount(ctx, actor, accountID, input, entity.RoleCustomer)
}

func (srv *hierarchyService) updateAccount(ctx context.Context, actor entity.SessionClaims, accountID primitive.ObjectID, input usecase.UpdateAccountInput, expected entity.Role) (*usecase.AccountView, error) {
	if input.NewPhoneNumber != nil {
		if err := validatePhoneNumber(*input.NewPhoneNumber); err != nil {
			return nil, err
		}
	}
	if input.NewPassword != nil {
		if err := validatePassword(*input.NewPassword); err != nil {
			return nil, err
		}
	}

	var view *usecase.AccountView
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		account, err := loadAuthorizedAccount(ctx, repos, actor, accountID, expected)
		if err != nil {
			return err
		}

		record := entity.NewActionRecord(actor.ProfileID, srv.now())
		if _, err := applyCredentialChanges(ctx, repos, srv.hasher, account, input, record); err != nil {
			return err
		}

		view, err = accountView(ctx, repos.ProfileRepo(), account)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	return view, nil
}

// UpdateProfile changes any profile the actor may manage.
func (srv *hierarchyService) UpdateProfile(ctx context.Context, actor entity.SessionClaims, profileID primitive.ObjectID, input usecase.UpdateProfileInput) (*usecase.ProfileView, error) {
	return srv.updateProfile(ctx, actor, profileID, input, "")
}

// UpdateStaffProfile changes a staff profile. Admin only.
func (srv *hierarchyService) UpdateStaffProfile(ctx context.Context, actor entity.SessionClaims, profileID primitive.ObjectID, input usecase.UpdateProfileInput) (*usecase.ProfileView, error) {
	return srv.updateProfile(ctx, actor, profileID, input, entity.RoleStaff)
}

// UpdateCustomerProfile changes a customer profile. Staff may only update their own customers.
func (srv *hierarchyService) UpdateCustomerProfile(ctx context.Context, actor entity.SessionClaims, profileID primitive.ObjectID, input usecase.UpdateProfileInput) (*usecase.ProfileView, error) {
	return srv.updateProfile(ctx, actor, profileID, input, entity.RoleCustomer)
}

func (srv *hierarchyService) updateProfile(ctx context.Context, actor entity.SessionClaims, profileID primitive.ObjectID, input usecase.UpdateProfileInput, expected entity.Role) (*usecase.ProfileView, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	var view *usecase.ProfileView
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		profile, err := loadAuthorizedProfile(ctx, repos, actor, profileID, expected)
		if err != nil {
			return err
		}

		record := entity.NewActionRecord(actor.ProfileID, srv.now())
		if err := applyProfileChanges(ctx, repos, profile, input, record); err != nil {
			return err
		}

		view, err = profileView(ctx, repos.ProfileRepo(), profile)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return view, nil
}

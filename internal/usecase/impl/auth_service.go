package impl

import (
	"context"
	"log/slog"
	"time"

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

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	profileRepo  repository.ProfileRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	sessions     service.SessionStore
	now          func() time.Time
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	ProfileRepo  repository.ProfileRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Sessions     service.SessionStore
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		profileRepo:  params.ProfileRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		sessions:     params.Sessions,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a self-stamped customer pair. When a staff phone number is given the
// customer is linked to that staff on both sides; an unknown staff aborts before anything is written.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AccountView, error) {
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

		var staff *entity.Profile
		if input.StaffPhoneNumber != "" {
			staff, err = repos.ProfileRepo().FindByPhoneNumberAndRole(ctx, input.StaffPhoneNumber, entity.RoleStaff)
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrStaffNotFound
			}
			if err != nil {
				return translateRepoError(err, "failed to find staff")
			}
			if staff.ListSubProfile == nil {
				return domainerrors.ErrEdgeListNotFound.WithDetails("staff has no sub-list")
			}
		}

		account, profile, err := createPair(ctx, repos, newPair{
			PhoneNumber:  input.PhoneNumber,
			PasswordHash: hash,
			Name:         input.Name,
			Role:         entity.RoleCustomer,
			At:           srv.now(),
		})
		if err != nil {
			return err
		}

		if staff != nil {
			if _, err := link(ctx, repos.EdgeListRepo(), staff, profile); err != nil {
				return err
			}
		}

		view, err = accountView(ctx, repos.ProfileRepo(), account)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register")
	}

	srv.log(ctx).Info("Customer registered", slog.String("accountID", view.ID), slog.Bool("withStaff", input.StaffPhoneNumber != ""))

	return view, nil
}

// Login verifies the credentials, issues a token and opens its session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByPhoneNumber(ctx, input.PhoneNumber)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrPhoneNumberNotFound
	}
	if err != nil {
		return nil, errors.Wrap(translateRepoError(err, "failed to find account"), "failed to login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login with invalid password", slog.String("accountID", account.ID.Hex()))

		return nil, domainerrors.ErrPasswordInvalid
	}

	claims := entity.ClaimsFromAccount(account)
	token, expiresAt, err := srv.tokenService.GenerateToken(claims)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}
	if err := srv.sessions.Put(ctx, token, claims, expiresAt.Sub(srv.now())); err != nil {
		return nil, errors.Wrap(err, "failed to open session")
	}

	view, err := accountView(ctx, srv.profileRepo, account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to login")
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("accountID", account.ID.Hex()), slog.Any("role", account.Role))

	return &usecase.LoginOutput{Account: view, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes token.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if err := srv.sessions.Remove(ctx, token); err != nil {
		return errors.Wrap(err, "failed to logout")
	}

	return nil
}

// Authenticate fails closed: any verification or lookup failure is reported as ErrUnauthorized.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.SessionClaims, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	tokenClaims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.sessions.Get(ctx, token)
	if err != nil {
		if !errors.Is(err, service.ErrSessionNotFound) {
			srv.log(ctx).Error("Session lookup failed", slog.Any("error", err))
		}

		return nil, domainerrors.ErrUnauthorized
	}
	if claims.AccountID != tokenClaims.AccountID {
		srv.log(ctx).Warn("Session does not match token", slog.String("accountID", tokenClaims.AccountID.Hex()))

		return nil, domainerrors.ErrUnauthorized
	}

	return claims, nil
}

// ChangePassword replaces the actor's password and revokes token.
func (srv *authService) ChangePassword(ctx context.Context, actor entity.SessionClaims, token string, input usecase.ChangePasswordInput) error {
	account, err := srv.accountRepo.FindByID(ctx, actor.AccountID)
	if err != nil {
		return errors.Wrap(translateRepoError(err, "failed to find account"), "failed to change password")
	}
	if !srv.hasher.Check(input.OldPassword, account.PasswordHash) {
		return domainerrors.ErrOldPasswordIncorrect
	}
	if input.NewPassword1 != input.NewPassword2 {
		return domainerrors.ErrNewPasswordMismatch
	}
	if err := validatePassword(input.NewPassword1); err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		record := entity.NewActionRecord(actor.ProfileID, srv.now())
		_, err := applyCredentialChanges(ctx, repos, srv.hasher, account, usecase.UpdateAccountInput{NewPassword: &input.NewPassword1}, record)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to change password")
	}

	return srv.revoke(ctx, token)
}

// ChangePhoneNumber moves the actor's account and profile to a new phone number and revokes token.
func (srv *authService) ChangePhoneNumber(ctx context.Context, actor entity.SessionClaims, token string, input usecase.ChangePhoneNumberInput) error {
	account, err := srv.accountRepo.FindByID(ctx, actor.AccountID)
	if err != nil {
		return errors.Wrap(translateRepoError(err, "failed to find account"), "failed to change phone number")
	}
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return domainerrors.ErrPasswordInvalid
	}
	if input.NewPhoneNumber1 != input.NewPhoneNumber2 {
		return domainerrors.ErrNewPhoneNumberMismatch
	}
	if err := validatePhoneNumber(input.NewPhoneNumber1); err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		record := entity.NewActionRecord(actor.ProfileID, srv.now())
		_, err := applyCredentialChanges(ctx, repos, srv.hasher, account, usecase.UpdateAccountInput{NewPhoneNumber: &input.NewPhoneNumber1}, record)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to change phone number")
	}

	return srv.revoke(ctx, token)
}

func (srv *authService) revoke(ctx context.Context, token string) error {
	if err := srv.sessions.Remove(ctx, token); err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

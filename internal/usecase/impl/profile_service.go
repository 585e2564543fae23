package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/entity"
	"roster/internal/domain/repository"
	"roster/internal/errors"
	"roster/internal/usecase"

	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	now         func() time.Time
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOwnProfile returns the actor's own profile.
func (srv *profileService) GetOwnProfile(ctx context.Context, actor entity.SessionClaims) (*usecase.ProfileView, error) {
	profile, err := srv.profileRepo.FindByID(ctx, actor.ProfileID)
	if err != nil {
		return nil, errors.Wrap(translateRepoError(err, "failed to find profile"), "failed to get own profile")
	}

	view, err := profileView(ctx, srv.profileRepo, profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get own profile")
	}

	return view, nil
}

// EditOwnProfile applies the field diff of input to the actor's own profile, stamped by the actor.
func (srv *profileService) EditOwnProfile(ctx context.Context, actor entity.SessionClaims, input usecase.UpdateProfileInput) (*usecase.ProfileView, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	var view *usecase.ProfileView
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		profile, err := repos.ProfileRepo().FindByID(ctx, actor.ProfileID)
		if err != nil {
			return translateRepoError(err, "failed to find profile")
		}

		record := entity.NewActionRecord(actor.ProfileID, srv.now())
		if err := applyProfileChanges(ctx, repos, profile, input, record); err != nil {
			return err
		}

		view, err = profileView(ctx, repos.ProfileRepo(), profile)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to edit own profile", slog.String("profileID", actor.ProfileID.Hex()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to edit own profile")
	}

	return view, nil
}

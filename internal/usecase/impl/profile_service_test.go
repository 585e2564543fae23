package impl

import (
	"context"
	"testing"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/errors"
	mockRepo "roster/internal/mocks/repository"
	"roster/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProfileService_GetOwnProfile(t *testing.T) {
	f := newMemoryFixtures(t, 50)
	ctx := context.Background()

	staff := f.createStaff(t, "0902222222", "Alice Staff")

	view, err := f.profiles.GetOwnProfile(ctx, staff)
	require.NoError(t, err)
	assert.Equal(t, staff.ProfileID.Hex(), view.ID)
	assert.Equal(t, staff.AccountID.Hex(), view.AccountID)
	assert.Equal(t, entity.RoleStaff, view.Role)
	require.NotNil(t, view.LastModified)
	assert.Equal(t, "Administrator", view.LastModified.Name)
}

func TestProfileService_EditOwnProfile(t *testing.T) {
	f := newMemoryFixtures(t, 50)
	ctx := context.Background()

	customer := f.createCustomer(t, f.admin, "0903333333", "Carol Customer")

	view, err := f.profiles.EditOwnProfile(ctx, customer, usecase.UpdateProfileInput{
		Name:  stringPtr("Carol Renamed"),
		Email: stringPtr("carol@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Carol Renamed", view.Name)
	assert.Equal(t, "carol@example.com", view.Email)
	require.NotNil(t, view.LastModified)
	assert.Equal(t, "Carol Renamed", view.LastModified.Name)
	assert.Equal(t, entity.RoleCustomer, view.LastModified.Role)

	_, err = f.profiles.EditOwnProfile(ctx, customer, usecase.UpdateProfileInput{Name: stringPtr("Cat")})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, "Carol Renamed", f.profile(t, customer.ProfileID).Name)
}

func TestProfileService_EditOwnProfile_NoChangeKeepsStamp(t *testing.T) {
	f := newMemoryFixtures(t, 50)
	ctx := context.Background()

	customer := f.createCustomer(t, f.admin, "0903333333", "Carol Customer")
	before := f.profile(t, customer.ProfileID).LastModified

	_, err := f.profiles.EditOwnProfile(ctx, customer, usecase.UpdateProfileInput{Name: stringPtr("Carol Customer")})
	require.NoError(t, err)
	assert.Equal(t, before, f.profile(t, customer.ProfileID).LastModified)
}

// profileServiceFixtures holds the mocked dependencies of the profile service.
type profileServiceFixtures struct {
	t           *testing.T
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	svc := NewProfileService(ProfileServiceParams{
		TxManager:   txManager,
		ProfileRepo: profileRepo,
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{t: t, service: svc, txManager: txManager, profileRepo: profileRepo}
}

// onExecute runs the transaction callback against a fresh mock factory prepared by setup.
func (fx profileServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

func TestProfileService_GetOwnProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	actor := entity.SessionClaims{ProfileID: primitive.NewObjectID(), Role: entity.RoleStaff}

	fx.profileRepo.EXPECT().FindByID(ctx, actor.ProfileID).Return(nil, repository.ErrProfileNotFound)

	view, err := fx.service.GetOwnProfile(ctx, actor)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_EditOwnProfile_UpdateError(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	actor := entity.SessionClaims{ProfileID: primitive.NewObjectID(), Role: entity.RoleCustomer}
	existing := &entity.Profile{ID: actor.ProfileID, Name: "Carol Customer", Role: entity.RoleCustomer}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txProfiles := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(txProfiles)
		txProfiles.EXPECT().FindByID(ctx, actor.ProfileID).Return(existing, nil)
		txProfiles.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Profile")).
			Run(func(_ context.Context, profile *entity.Profile) {
				assert.Equal(t, "12 Harbour Road", profile.Address)
				assert.Equal(t, actor.ProfileID, profile.LastModified.EditedBy)
			}).
			Return(errors.New("write concern failed"))
	})

	view, err := fx.service.EditOwnProfile(ctx, actor, usecase.UpdateProfileInput{Address: stringPtr("12 Harbour Road")})

	assert.Nil(t, view)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to edit own profile")
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

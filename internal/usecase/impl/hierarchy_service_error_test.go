package impl

import (
	"context"
	"testing"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/errors"
	mockRepo "roster/internal/mocks/repository"
	mockSvc "roster/internal/mocks/service"
	"roster/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// hierarchyServiceFixtures holds the mocked dependencies of the hierarchy service.
type hierarchyServiceFixtures struct {
	t            *testing.T
	service      usecase.HierarchyUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	profileRepo  *mockRepo.MockProfileRepository
	edgeListRepo *mockRepo.MockEdgeListRepository
	hasher       *mockSvc.MockPasswordHasher
}

func createTestHierarchyService(t *testing.T) hierarchyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	edgeListRepo := mockRepo.NewMockEdgeListRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	svc := NewHierarchyService(HierarchyServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		ProfileRepo:  profileRepo,
		EdgeListRepo: edgeListRepo,
		Hasher:       hasher,
		Config:       newTestConfig(50),
		Logger:       newDiscardLogger(),
	})

	return hierarchyServiceFixtures{
		t:            t,
		service:      svc,
		txManager:    txManager,
		accountRepo:  accountRepo,
		profileRepo:  profileRepo,
		edgeListRepo: edgeListRepo,
		hasher:       hasher,
	}
}

// onExecute runs the transaction callback against a fresh mock factory prepared by setup.
func (fx hierarchyServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

func adminClaims() entity.SessionClaims {
	return entity.SessionClaims{
		AccountID:   primitive.NewObjectID(),
		ProfileID:   primitive.NewObjectID(),
		PhoneNumber: "0900000000",
		Role:        entity.RoleAdmin,
	}
}

func TestHierarchyService_CreateUser_HashFailure(t *testing.T) {
	fx := createTestHierarchyService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(testPassword).Return("", errors.New("cost out of range"))

	view, err := fx.service.CreateCustomer(ctx, adminClaims(), usecase.CreateMemberInput{
		PhoneNumber: "0903333333",
		Password:    testPassword,
		Name:        "Carol Customer",
	})

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestHierarchyService_CreateUser_AccountWriteFailure(t *testing.T) {
	fx := createTestHierarchyService(t)
	ctx := context.Background()
	actor := adminClaims()
	subList := primitive.NewObjectID()

	fx.hasher.EXPECT().Hash(testPassword).Return("hashed", nil)
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txAccounts := mockRepo.NewMockAccountRepository(t)
		txProfiles := mockRepo.NewMockProfileRepository(t)
		txLists := mockRepo.NewMockEdgeListRepository(t)
		factory.EXPECT().AccountRepo().Return(txAccounts)
		factory.EXPECT().ProfileRepo().Return(txProfiles)
		factory.EXPECT().EdgeListRepo().Return(txLists)

		txAccounts.EXPECT().FindByPhoneNumber(ctx, "0903333333").Return(nil, repository.ErrAccountNotFound)
		txProfiles.EXPECT().FindByID(ctx, actor.ProfileID).Return(&entity.Profile{
			ID:             actor.ProfileID,
			Role:           entity.RoleAdmin,
			ListSubProfile: &subList,
		}, nil)
		txLists.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.EdgeList")).
			Run(func(_ context.Context, list *entity.EdgeList) {
				assert.Equal(t, []primitive.ObjectID{actor.ProfileID}, list.IDs)
			}).
			Return(nil).
			Once()
		txAccounts.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(errors.New("connection reset"))
	})

	view, err := fx.service.CreateCustomer(ctx, actor, usecase.CreateMemberInput{
		PhoneNumber: "0903333333",
		Password:    testPassword,
		Name:        "Carol Customer",
	})

	assert.Nil(t, view)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create user")
	var dbErr *domainerrors.DatabaseExecuteError
	require.True(t, errors.As(err, &dbErr))
	assert.Equal(t, "failed to create account", dbErr.Details())
}

func TestHierarchyService_AddSubordinates_EdgeWriteFailure(t *testing.T) {
	fx := createTestHierarchyService(t)
	ctx := context.Background()
	staffSub := primitive.NewObjectID()
	customerSuper := primitive.NewObjectID()
	staff := &entity.Profile{ID: primitive.NewObjectID(), Role: entity.RoleStaff, ListSubProfile: &staffSub}
	customer := &entity.Profile{ID: primitive.NewObjectID(), Role: entity.RoleCustomer, ListSuperProfile: &customerSuper}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txProfiles := mockRepo.NewMockProfileRepository(t)
		txLists := mockRepo.NewMockEdgeListRepository(t)
		factory.EXPECT().ProfileRepo().Return(txProfiles)
		factory.EXPECT().EdgeListRepo().Return(txLists)

		txProfiles.EXPECT().FindByID(ctx, staff.ID).Return(staff, nil)
		txProfiles.EXPECT().FindByIDs(ctx, []primitive.ObjectID{customer.ID}).Return([]*entity.Profile{customer}, nil)
		txLists.EXPECT().AddID(ctx, staffSub, customer.ID).Return(true, nil)
		txLists.EXPECT().AddID(ctx, customerSuper, staff.ID).Return(false, errors.New("not primary"))
	})

	err := fx.service.AddSubordinates(ctx, adminClaims(), usecase.EdgeChangeInput{
		StaffProfileID:     staff.ID,
		CustomerProfileIDs: []primitive.ObjectID{customer.ID},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add subordinates")
	var dbErr *domainerrors.DatabaseExecuteError
	require.True(t, errors.As(err, &dbErr))
	assert.Equal(t, "failed to update super-list", dbErr.Details())
}

func TestHierarchyService_ListStaff_SearchFailure(t *testing.T) {
	fx := createTestHierarchyService(t)
	ctx := context.Background()
	actor := adminClaims()
	subListID := primitive.NewObjectID()

	fx.profileRepo.EXPECT().FindByID(ctx, actor.ProfileID).Return(&entity.Profile{ID: actor.ProfileID, Role: entity.RoleAdmin, ListSubProfile: &subListID}, nil)
	fx.edgeListRepo.EXPECT().FindByID(ctx, subListID).Return(&entity.EdgeList{ID: subListID}, nil)
	fx.profileRepo.EXPECT().
		Search(ctx, mock.AnythingOfType("repository.ProfileFilter")).
		Run(func(_ context.Context, filter repository.ProfileFilter) {
			assert.NotNil(t, filter.IDs)
			assert.Empty(t, filter.IDs)
			assert.Equal(t, entity.RoleStaff, filter.Role)
			assert.Equal(t, int64(10), filter.Skip)
			assert.Equal(t, int64(10), filter.Limit)
		}).
		Return(nil, errors.New("cursor killed"))

	result, err := fx.service.ListStaff(ctx, actor, usecase.ListInput{Page: 2, Size: 10})

	assert.Nil(t, result)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestHierarchyService_PageFilter_OverflowGuard(t *testing.T) {
	srv := &hierarchyService{maxRecords: 50}

	filter, err := srv.pageFilter(usecase.ListInput{Page: 1 << 62, Size: 50, SearchString: "  alice  "})

	require.NoError(t, err)
	assert.Equal(t, int64(1<<63-1), filter.Skip)
	assert.Equal(t, int64(50), filter.Limit)
	assert.Equal(t, "alice", filter.Search)
}

func TestHierarchyService_ShortProfiles_MissingEditor(t *testing.T) {
	fx := createTestHierarchyService(t)
	ctx := context.Background()
	actor := adminClaims()
	editor := primitive.NewObjectID()
	account := &entity.Account{
		ID:           primitive.NewObjectID(),
		PhoneNumber:  "0902222222",
		Role:         entity.RoleStaff,
		ProfileID:    primitive.NewObjectID(),
		FirstCreated: entity.ActionRecord{EditedBy: editor},
		LastModified: entity.ActionRecord{EditedBy: actor.ProfileID},
	}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.profileRepo.EXPECT().
		FindByIDs(ctx, []primitive.ObjectID{editor, actor.ProfileID}).
		Return([]*entity.Profile{{ID: actor.ProfileID, Name: "Administrator", Role: entity.RoleAdmin}}, nil)

	view, err := fx.service.GetStaffAccount(ctx, actor, account.ID)

	require.NoError(t, err)
	assert.Nil(t, view.FirstCreated)
	require.NotNil(t, view.LastModified)
	assert.Equal(t, "Administrator", view.LastModified.Name)
}

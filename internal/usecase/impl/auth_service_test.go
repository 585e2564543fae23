package impl

import (
	"context"
	"testing"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/errors"
	mockRepo "roster/internal/mocks/repository"
	mockSvc "roster/internal/mocks/service"
	"roster/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	f := newMemoryFixtures(t, 50)
	ctx := context.Background()

	registered, err := f.auth.Register(ctx, usecase.RegisterInput{
		PhoneNumber: "0901111111",
		Password:    testPassword,
		Name:        "Self Registered",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, registered.Role)
	require.NotNil(t, registered.FirstCreated)
	assert.Equal(t, "Self Registered", registered.FirstCreated.Name)

	customer := claimsOf(t, registered)
	_, super := f.edgeIDs(t, customer.ProfileID)
	assert.Empty(t, super)
	assert.Equal(t, customer.ProfileID, f.profile(t, customer.ProfileID).LastModified.EditedBy)

	output, err := f.auth.Login(ctx, usecase.LoginInput{PhoneNumber: "0901111111", Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)
	assert.True(t, output.ExpiresAt.After(time.Now()))
	assert.Equal(t, registered.ID, output.Account.ID)

	claims, err := f.auth.Authenticate(ctx, output.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, claims.Role)
	assert.Equal(t, customer.ProfileID, claims.ProfileID)
	assert.Equal(t, customer.AccountID, claims.AccountID)
}

func TestAuthService_Register_WithStaff(t *testing.T) {
	f := newMemoryFixtures(t, 50)
	ctx := context.Background()

	staff := f.createStaff(t, "0902222222", "Alice Staff")

	registered, err := f.auth.Register(ctx, usecase.RegisterInput{
		PhoneNumber:      "0901111111",
		Password:         testPassword,
		Name:             "Introduced Customer",
		StaffPhoneNumber: "0902222222",
	})
	require.NoError(t, err)
	customer := claimsOf(t, registered)

	staffSub, _ := f.edgeIDs(t, staff.ProfileID)
	assert.Equal(t, []primitive.ObjectID{customer.ProfileID}, staffSub)
	_, super := f.edgeIDs(t, customer.ProfileID)
	assert.Equal(t, []primitive.ObjectID{staff.ProfileID}, super)
}

func TestAuthService_Register_Rejections(t *testing.T) {
	f := newMemoryFixtures(t, 50)
	ctx := context.Background()

	f.createCustomer(t, f.admin, "0903333333", "Carol Customer")

	_, err := f.auth.Register(ctx, usecase.RegisterInput{
		PhoneNumber:      "0901111111",
		Password:         testPassword,
		Name:             "Introduced Customer",
		StaffPhoneNumber: "0903333333",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrStaffNotFound))
	_, err = f.store.AccountRepo().FindByPhoneNumber(ctx, "0901111111")
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))

	_, err = f.auth.Register(ctx, usecase.RegisterInput{
		PhoneNumber: "0903333333",
		Password:    testPassword,
		Name:        "Second Carol",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrPhoneNumberExists))

	_, err = f.auth.Register(ctx, usecase.RegisterInput{
		PhoneNumber: "0901111111",
		Password:    testPassword,
		Name:        "Bob",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Login_Rejections(t *testing.T) {
	f := newMemoryFixtures(t, 50)
	ctx := context.Background()

	_, err := f.auth.Login(ctx, usecase.LoginInput{PhoneNumber: "0909999999", Password: testPassword})
	assert.True(t, errors.Is(err, domainerrors.ErrPhoneNumberNotFound))

	_, err = f.auth.Login(ctx, usecase.LoginInput{PhoneNumber: "0900000000", Password: "wrong-pass"})
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordInvalid))
	assert.Zero(t, f.sessions.Len())
}

func TestAuthService_Logout(t *testing.T) {
	f := newMemoryFixtures(t, 50)
	ctx := context.Background()

	output, err := f.auth.Login(ctx, usecase.LoginInput{PhoneNumber: "0900000000", Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, f.auth.Logout(ctx, output.Token))

	_, err = f.auth.Authenticate(ctx, output.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.NoError(t, f.auth.Logout(ctx, output.Token))
}

func TestAuthService_Authenticate_Rejections(t *testing.T) {
	f := newMemoryFixtures(t, 50)
	ctx := context.Background()

	for _, token := range []string{"", "not-a-token"} {
		_, err := f.auth.Authenticate(ctx, token)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	f := newMemoryFixtures(t, 50)
	ctx := context.Background()

	staff := f.createStaff(t, "0902222222", "Alice Staff")
	output, err := f.auth.Login(ctx, usecase.LoginInput{PhoneNumber: "0902222222", Password: testPassword})
	require.NoError(t, err)

	err = f.auth.ChangePassword(ctx, staff, output.Token, usecase.ChangePasswordInput{
		OldPassword: "wrong-pass", NewPassword1: "next-pass", NewPassword2: "next-pass",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrOldPasswordIncorrect))

	err = f.auth.ChangePassword(ctx, staff, output.Token, usecase.ChangePasswordInput{
		OldPassword: testPassword, NewPassword1: "next-pass", NewPassword2: "other-pass",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrNewPasswordMismatch))

	require.NoError(t, f.auth.ChangePassword(ctx, staff, output.Token, usecase.ChangePasswordInput{
		OldPassword: testPassword, NewPassword1: "next-pass", NewPassword2: "next-pass",
	}))

	_, err = f.auth.Authenticate(ctx, output.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	_, err = f.auth.Login(ctx, usecase.LoginInput{PhoneNumber: "0902222222", Password: testPassword})
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordInvalid))

	_, err = f.auth.Login(ctx, usecase.LoginInput{PhoneNumber: "0902222222", Password: "next-pass"})
	assert.NoError(t, err)

	account, err := f.store.AccountRepo().FindByID(ctx, staff.AccountID)
	require.NoError(t, err)
	assert.Equal(t, staff.ProfileID, account.LastModified.EditedBy)
}

func TestAuthService_ChangePhoneNumber(t *testing.T) {
	f := newMemoryFixtures(t, 50)
	ctx := context.Background()

	staff := f.createStaff(t, "0902222222", "Alice Staff")
	f.createStaff(t, "0902222223", "Bob Staff")
	output, err := f.auth.Login(ctx, usecase.LoginInput{PhoneNumber: "0902222222", Password: testPassword})
	require.NoError(t, err)

	err = f.auth.ChangePhoneNumber(ctx, staff, output.Token, usecase.ChangePhoneNumberInput{
		Password: "wrong-pass", NewPhoneNumber1: "0907777777", NewPhoneNumber2: "0907777777",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordInvalid))

	err = f.auth.ChangePhoneNumber(ctx, staff, output.Token, usecase.ChangePhoneNumberInput{
		Password: testPassword, NewPhoneNumber1: "0907777777", NewPhoneNumber2: "0907777778",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrNewPhoneNumberMismatch))

	err = f.auth.ChangePhoneNumber(ctx, staff, output.Token, usecase.ChangePhoneNumberInput{
		Password: testPassword, NewPhoneNumber1: "0902222223", NewPhoneNumber2: "0902222223",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrPhoneNumberExists))

	require.NoError(t, f.auth.ChangePhoneNumber(ctx, staff, output.Token, usecase.ChangePhoneNumberInput{
		Password: testPassword, NewPhoneNumber1: "0907777777", NewPhoneNumber2: "0907777777",
	}))

	_, err = f.auth.Authenticate(ctx, output.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.Equal(t, "0907777777", f.profile(t, staff.ProfileID).PhoneNumber)

	_, err = f.auth.Login(ctx, usecase.LoginInput{PhoneNumber: "0907777777", Password: testPassword})
	assert.NoError(t, err)
}

// authServiceFixtures holds the mocked dependencies of the auth service.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	profileRepo  *mockRepo.MockProfileRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	sessions     *mockSvc.MockSessionStore
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	sessions := mockSvc.NewMockSessionStore(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		ProfileRepo:  profileRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Sessions:     sessions,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		txManager:    txManager,
		accountRepo:  accountRepo,
		profileRepo:  profileRepo,
		hasher:       hasher,
		tokenService: tokenService,
		sessions:     sessions,
	}
}

func testAccount() *entity.Account {
	return &entity.Account{
		ID:           primitive.NewObjectID(),
		PhoneNumber:  "0901111111",
		PasswordHash: "hashed",
		Role:         entity.RoleCustomer,
		ProfileID:    primitive.NewObjectID(),
	}
}

func TestAuthService_Authenticate_SessionMismatch(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	tokenClaims := &service.Claims{SessionClaims: entity.SessionClaims{AccountID: primitive.NewObjectID()}}
	fx.tokenService.EXPECT().ValidateToken("token").Return(tokenClaims, nil)
	fx.sessions.EXPECT().Get(ctx, "token").Return(&entity.SessionClaims{AccountID: primitive.NewObjectID()}, nil)

	claims, err := fx.service.Authenticate(ctx, "token")

	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_Authenticate_StoreFailureFailsClosed(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateToken("token").Return(&service.Claims{}, nil)
	fx.sessions.EXPECT().Get(ctx, "token").Return(nil, errors.New("connection refused"))

	claims, err := fx.service.Authenticate(ctx, "token")

	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := testAccount()

	fx.accountRepo.EXPECT().FindByPhoneNumber(ctx, account.PhoneNumber).Return(account, nil)
	fx.hasher.EXPECT().Check(testPassword, account.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(entity.ClaimsFromAccount(account)).Return("", time.Time{}, errors.New("signing failed"))

	output, err := fx.service.Login(ctx, usecase.LoginInput{PhoneNumber: account.PhoneNumber, Password: testPassword})

	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to generate token")
}

func TestAuthService_Login_SessionFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := testAccount()
	claims := entity.ClaimsFromAccount(account)

	fx.accountRepo.EXPECT().FindByPhoneNumber(ctx, account.PhoneNumber).Return(account, nil)
	fx.hasher.EXPECT().Check(testPassword, account.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(claims).Return("token", time.Now().Add(time.Hour), nil)
	fx.sessions.EXPECT().Put(ctx, "token", claims, mock.AnythingOfType("time.Duration")).Return(errors.New("redis down"))

	output, err := fx.service.Login(ctx, usecase.LoginInput{PhoneNumber: account.PhoneNumber, Password: testPassword})

	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to open session")
}

func TestAuthService_Login_DatabaseFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByPhoneNumber(ctx, "0901111111").Return(nil, errors.New("socket closed"))

	_, err := fx.service.Login(ctx, usecase.LoginInput{PhoneNumber: "0901111111", Password: testPassword})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestAuthService_ChangePassword_RollsBackBeforeRevoking(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := testAccount()
	actor := entity.ClaimsFromAccount(account)

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Check(testPassword, "hashed").Return(true)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txAccounts := mockRepo.NewMockAccountRepository(t)
			factory.EXPECT().AccountRepo().Return(txAccounts)

			fx.hasher.EXPECT().Check("next-pass", "hashed").Return(false)
			fx.hasher.EXPECT().Hash("next-pass").Return("next-hash", nil)
			txAccounts.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(errors.New("write conflict"))

			return fn(factory)
		})

	err := fx.service.ChangePassword(ctx, actor, "token", usecase.ChangePasswordInput{
		OldPassword: testPassword, NewPassword1: "next-pass", NewPassword2: "next-pass",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to change password")
	fx.sessions.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

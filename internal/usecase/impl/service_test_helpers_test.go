package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"roster/config"
	"roster/internal/domain/entity"
	"roster/internal/infra/auth"
	"roster/internal/infra/persistence/memory"
	"roster/internal/infra/session"
	"roster/internal/usecase"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "secret-pass"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxRecords int) *config.Config {
	cfg := &config.Config{
		Auth:       &config.AuthConfig{BcryptCost: bcrypt.MinCost, TokenTTL: time.Hour},
		Pagination: &config.PaginationConfig{MaxRecords: maxRecords},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

// memoryFixtures wires the usecases onto the in-memory store with real hashing and tokens.
type memoryFixtures struct {
	store     *memory.Store
	sessions  *session.MemoryStore
	hierarchy usecase.HierarchyUsecase
	auth      usecase.AuthUsecase
	profiles  usecase.ProfileUsecase
	admin     entity.SessionClaims
}

func newMemoryFixtures(t *testing.T, maxRecords int) memoryFixtures {
	t.Helper()

	cfg := newTestConfig(maxRecords)
	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	accountRepo := memory.NewAccountRepository(store)
	profileRepo := memory.NewProfileRepository(store)
	edgeListRepo := memory.NewEdgeListRepository(store)
	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	sessions := session.NewMemoryStore()
	logger := newDiscardLogger()

	hierarchy := NewHierarchyService(HierarchyServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		ProfileRepo:  profileRepo,
		EdgeListRepo: edgeListRepo,
		Hasher:       hasher,
		Config:       cfg,
		Logger:       logger,
	})
	authUsecase := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		ProfileRepo:  profileRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Sessions:     sessions,
		Logger:       logger,
	})
	profiles := NewProfileService(ProfileServiceParams{
		TxManager:   txManager,
		ProfileRepo: profileRepo,
		Logger:      logger,
	})

	admin, err := hierarchy.BootstrapAdmin(context.Background(), usecase.CreateMemberInput{
		PhoneNumber: "0900000000",
		Password:    testPassword,
		Name:        "Administrator",
	})
	require.NoError(t, err)

	return memoryFixtures{
		store:     store,
		sessions:  sessions,
		hierarchy: hierarchy,
		auth:      authUsecase,
		profiles:  profiles,
		admin:     claimsOf(t, admin),
	}
}

// claimsOf rebuilds the session identity of a created account.
func claimsOf(t *testing.T, view *usecase.AccountView) entity.SessionClaims {
	t.Helper()

	accountID, err := primitive.ObjectIDFromHex(view.ID)
	require.NoError(t, err)
	profileID, err := primitive.ObjectIDFromHex(view.ProfileID)
	require.NoError(t, err)

	return entity.SessionClaims{
		AccountID:   accountID,
		ProfileID:   profileID,
		PhoneNumber: view.PhoneNumber,
		Role:        view.Role,
	}
}

func (f memoryFixtures) createStaff(t *testing.T, phoneNumber, name string) entity.SessionClaims {
	t.Helper()

	view, err := f.hierarchy.CreateStaff(context.Background(), f.admin, usecase.CreateMemberInput{
		PhoneNumber: phoneNumber,
		Password:    testPassword,
		Name:        name,
	})
	require.NoError(t, err)

	return claimsOf(t, view)
}

func (f memoryFixtures) createCustomer(t *testing.T, creator entity.SessionClaims, phoneNumber, name string) entity.SessionClaims {
	t.Helper()

	view, err := f.hierarchy.CreateCustomer(context.Background(), creator, usecase.CreateMemberInput{
		PhoneNumber: phoneNumber,
		Password:    testPassword,
		Name:        name,
	})
	require.NoError(t, err)

	return claimsOf(t, view)
}

// edgeIDs returns the sub-list and super-list contents of a profile, nil when the side is absent.
func (f memoryFixtures) edgeIDs(t *testing.T, profileID primitive.ObjectID) (sub, super []primitive.ObjectID) {
	t.Helper()

	ctx := context.Background()
	profile, err := f.store.ProfileRepo().FindByID(ctx, profileID)
	require.NoError(t, err)

	if profile.ListSubProfile != nil {
		list, err := f.store.EdgeListRepo().FindByID(ctx, *profile.ListSubProfile)
		require.NoError(t, err)
		sub = list.IDs
	}
	if profile.ListSuperProfile != nil {
		list, err := f.store.EdgeListRepo().FindByID(ctx, *profile.ListSuperProfile)
		require.NoError(t, err)
		super = list.IDs
	}

	return sub, super
}

func (f memoryFixtures) profile(t *testing.T, profileID primitive.ObjectID) *entity.Profile {
	t.Helper()

	profile, err := f.store.ProfileRepo().FindByID(context.Background(), profileID)
	require.NoError(t, err)

	return profile
}

func stringPtr(s string) *string {
	return &s
}

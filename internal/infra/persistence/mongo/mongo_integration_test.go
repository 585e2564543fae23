//go:build integration

package mongo

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"roster/config"
	"roster/internal/domain/entity"
	"roster/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func startMongo(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	container, err := tcmongo.Run(ctx, "mongo:7", tcmongo.WithReplicaSet("rs0"))
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := Connect(&config.MongoConfig{URI: uri, Database: "roster_test", Timeout: 10 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("roster_test")
	require.NoError(t, EnsureIndexes(ctx, db))

	return db
}

func newTestTxManager(db *mongo.Database) repository.TransactionManager {
	cfg := &config.Config{Mongo: &config.MongoConfig{Transactions: true}}

	return NewTransactionManager(db, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestIntegration_AccountUniquePhoneNumber(t *testing.T) {
	db := startMongo(t)
	ctx := context.Background()
	repo := NewAccountRepository(db)

	first := &entity.Account{PhoneNumber: "0900000001", PasswordHash: "h", Role: entity.RoleStaff}
	require.NoError(t, repo.Create(ctx, first))

	dup := &entity.Account{PhoneNumber: "0900000001", PasswordHash: "h", Role: entity.RoleCustomer}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrDuplicatePhoneNumber)

	found, err := repo.FindByPhoneNumber(ctx, "0900000001")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = repo.FindByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestIntegration_TransactionRollsBack(t *testing.T) {
	db := startMongo(t)
	ctx := context.Background()
	tm := newTestTxManager(db)

	account := &entity.Account{PhoneNumber: "0900000002", PasswordHash: "h", Role: entity.RoleStaff}
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.AccountRepo().Create(ctx, account); err != nil {
			return err
		}

		return f.ProfileRepo().Update(ctx, &entity.Profile{ID: primitive.NewObjectID()})
	})
	require.ErrorIs(t, err, repository.ErrProfileNotFound)

	_, err = NewAccountRepository(db).FindByPhoneNumber(ctx, "0900000002")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestIntegration_EdgeListConcurrentAdds(t *testing.T) {
	db := startMongo(t)
	ctx := context.Background()
	repo := NewEdgeListRepository(db)

	list := entity.NewEdgeList()
	require.NoError(t, repo.Create(ctx, list))

	ids := make([]primitive.ObjectID, 20)
	for i := range ids {
		ids[i] = primitive.NewObjectID()
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id primitive.ObjectID) {
			defer wg.Done()
			changed, err := repo.AddID(ctx, list.ID, id)
			assert.NoError(t, err)
			assert.True(t, changed)
		}(id)
	}
	wg.Wait()

	changed, err := repo.AddID(ctx, list.ID, ids[0])
	require.NoError(t, err)
	assert.False(t, changed)

	stored, err := repo.FindByID(ctx, list.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, ids, stored.IDs)

	changed, err = repo.RemoveID(ctx, list.ID, ids[0])
	require.NoError(t, err)
	assert.True(t, changed)

	_, err = repo.AddID(ctx, primitive.NewObjectID(), ids[0])
	assert.ErrorIs(t, err, repository.ErrEdgeListNotFound)
}

func TestIntegration_ProfileSearch(t *testing.T) {
	db := startMongo(t)
	ctx := context.Background()
	edgeRepo := NewEdgeListRepository(db)
	repo := NewProfileRepository(db)

	emptySuper := entity.NewEdgeList()
	require.NoError(t, edgeRepo.Create(ctx, emptySuper))

	profiles := []*entity.Profile{
		{Name: "Customer Alpha", PhoneNumber: "0911111111", Role: entity.RoleCustomer, Email: "alpha@example.com", ListSuperProfile: &emptySuper.ID},
		{Name: "Customer Beta", PhoneNumber: "0922222222", Role: entity.RoleCustomer},
		{Name: "Staff Gamma", PhoneNumber: "0933333333", Role: entity.RoleStaff},
	}
	for _, p := range profiles {
		require.NoError(t, repo.Create(ctx, p))
	}

	customers, err := repo.Search(ctx, repository.ProfileFilter{Role: entity.RoleCustomer})
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, profiles[0].ID, customers[0].ID)

	found, err := repo.Search(ctx, repository.ProfileFilter{Search: "ALPHA@"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	none, err := repo.Search(ctx, repository.ProfileFilter{IDs: []primitive.ObjectID{}})
	require.NoError(t, err)
	assert.Empty(t, none)

	unassigned, err := repo.Search(ctx, repository.ProfileFilter{SuperListIDs: []primitive.ObjectID{emptySuper.ID}})
	require.NoError(t, err)
	require.Len(t, unassigned, 1)

	empties, err := edgeRepo.FindEmptyIDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, empties, emptySuper.ID)

	paged, err := repo.Search(ctx, repository.ProfileFilter{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, profiles[1].ID, paged[0].ID)
}

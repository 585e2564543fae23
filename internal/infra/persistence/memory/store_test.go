package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"roster/internal/domain/entity"
	"roster/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	store := NewStore()
	tm := NewTransactionManager(store)
	ctx := context.Background()

	list := entity.NewEdgeList()
	require.NoError(t, store.EdgeListRepo().Create(ctx, list))

	failure := errors.New("boom")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.AccountRepo().Create(ctx, &entity.Account{PhoneNumber: "0900000000"}))
		_, err := f.EdgeListRepo().AddID(ctx, list.ID, primitive.NewObjectID())
		require.NoError(t, err)

		return failure
	})
	require.ErrorIs(t, err, failure)

	_, err = store.AccountRepo().FindByPhoneNumber(ctx, "0900000000")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	stored, err := store.EdgeListRepo().FindByID(ctx, list.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.IDs)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	store := NewStore()
	tm := NewTransactionManager(store)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.AccountRepo().Create(ctx, &entity.Account{PhoneNumber: "0900000000"})
			panic("boom")
		})
	})

	_, err := store.AccountRepo().FindByPhoneNumber(ctx, "0900000000")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestTransactionManager_CanceledContext(t *testing.T) {
	tm := NewTransactionManager(NewStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := tm.Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestAccountRepository_UniquePhoneNumber(t *testing.T) {
	store := NewStore()
	repo := NewAccountRepository(store)
	ctx := context.Background()

	first := &entity.Account{PhoneNumber: "0900000000"}
	require.NoError(t, repo.Create(ctx, first))
	assert.False(t, first.ID.IsZero())

	assert.ErrorIs(t, repo.Create(ctx, &entity.Account{PhoneNumber: "0900000000"}), repository.ErrDuplicatePhoneNumber)

	second := &entity.Account{PhoneNumber: "0911111111"}
	require.NoError(t, repo.Create(ctx, second))
	second.PhoneNumber = "0900000000"
	assert.ErrorIs(t, repo.Update(ctx, second), repository.ErrDuplicatePhoneNumber)

	assert.ErrorIs(t, repo.Update(ctx, &entity.Account{ID: primitive.NewObjectID()}), repository.ErrAccountNotFound)
}

func TestProfileRepository_ReturnsCopies(t *testing.T) {
	store := NewStore()
	repo := NewProfileRepository(store)
	ctx := context.Background()

	sub := primitive.NewObjectID()
	profile := &entity.Profile{Name: "Staff Person", PhoneNumber: "0900000000", Role: entity.RoleStaff, ListSubProfile: &sub}
	require.NoError(t, repo.Create(ctx, profile))

	loaded, err := repo.FindByID(ctx, profile.ID)
	require.NoError(t, err)
	*loaded.ListSubProfile = primitive.NewObjectID()
	loaded.Name = "Changed Name"

	again, err := repo.FindByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, sub, *again.ListSubProfile)
	assert.Equal(t, "Staff Person", again.Name)
}

func TestProfileRepository_Search(t *testing.T) {
	store := NewStore()
	repo := NewProfileRepository(store)
	ctx := context.Background()

	superA := primitive.NewObjectID()
	superB := primitive.NewObjectID()
	profiles := []*entity.Profile{
		{ID: primitive.NewObjectID(), Name: "Customer One", PhoneNumber: "0900000001", Role: entity.RoleCustomer, Email: "one@example.com", ListSuperProfile: &superA},
		{ID: primitive.NewObjectID(), Name: "Customer Two", PhoneNumber: "0900000002", Role: entity.RoleCustomer, Address: "Main Street", ListSuperProfile: &superB},
		{ID: primitive.NewObjectID(), Name: "Staff Three", PhoneNumber: "0900000003", Role: entity.RoleStaff},
	}
	for _, p := range profiles {
		require.NoError(t, repo.Create(ctx, p))
	}

	tests := []struct {
		name   string
		filter repository.ProfileFilter
		want   []primitive.ObjectID
	}{
		{"all ordered by id", repository.ProfileFilter{}, []primitive.ObjectID{profiles[0].ID, profiles[1].ID, profiles[2].ID}},
		{"by role", repository.ProfileFilter{Role: entity.RoleCustomer}, []primitive.ObjectID{profiles[0].ID, profiles[1].ID}},
		{"empty id set", repository.ProfileFilter{IDs: []primitive.ObjectID{}}, []primitive.ObjectID{}},
		{"by id set", repository.ProfileFilter{IDs: []primitive.ObjectID{profiles[2].ID}}, []primitive.ObjectID{profiles[2].ID}},
		{"by super list", repository.ProfileFilter{SuperListIDs: []primitive.ObjectID{superB}}, []primitive.ObjectID{profiles[1].ID}},
		{"empty super list set", repository.ProfileFilter{SuperListIDs: []primitive.ObjectID{}}, []primitive.ObjectID{}},
		{"search is case-insensitive", repository.ProfileFilter{Search: "MAIN"}, []primitive.ObjectID{profiles[1].ID}},
		{"search is literal", repository.ProfileFilter{Search: "one@example.c.m"}, []primitive.ObjectID{}},
		{"skip and limit", repository.ProfileFilter{Skip: 1, Limit: 1}, []primitive.ObjectID{profiles[1].ID}},
		{"skip past end", repository.ProfileFilter{Skip: 10}, []primitive.ObjectID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]primitive.ObjectID, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestEdgeListRepository_ConcurrentAdds(t *testing.T) {
	store := NewStore()
	repo := NewEdgeListRepository(store)
	ctx := context.Background()

	list := entity.NewEdgeList()
	require.NoError(t, repo.Create(ctx, list))

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.AddID(ctx, list.ID, primitive.NewObjectID())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := repo.FindByID(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, stored.Len())

	empties, err := repo.FindEmptyIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, empties)

	_, err = repo.RemoveID(ctx, primitive.NewObjectID(), primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrEdgeListNotFound)
}

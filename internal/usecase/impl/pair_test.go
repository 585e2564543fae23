package impl

import (
	"context"
	"testing"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/errors"
	"roster/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePair_RejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name  string
		pair  newPair
		field string
	}{
		{
			name:  "empty password hash",
			pair:  newPair{PhoneNumber: "0904444444", Name: "Dave Customer", Role: entity.RoleCustomer},
			field: "password is invalid",
		},
		{
			name:  "unknown role",
			pair:  newPair{PhoneNumber: "0904444444", PasswordHash: "hash", Name: "Dave Customer", Role: entity.Role("guest")},
			field: "role is invalid",
		},
		{
			name:  "multibyte name of five characters",
			pair:  newPair{PhoneNumber: "0904444444", PasswordHash: "hash", Name: "Lê Hà", Role: entity.RoleCustomer},
			field: "name is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.NewStore()
			tt.pair.At = time.Now()

			account, profile, err := createPair(ctx, store, tt.pair)

			assert.Nil(t, account)
			assert.Nil(t, profile)
			require.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.field, appErr.Details())

			_, err = store.AccountRepo().FindByPhoneNumber(ctx, tt.pair.PhoneNumber)
			assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
			empty, err := store.EdgeListRepo().FindEmptyIDs(ctx)
			require.NoError(t, err)
			assert.Empty(t, empty)
		})
	}
}

func TestCreatePair_MultibyteName(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	account, profile, err := createPair(ctx, store, newPair{
		PhoneNumber:  "0904444444",
		PasswordHash: "hash",
		Name:         "Nguyễn Hà",
		Role:         entity.RoleStaff,
		At:           time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, profile.ID, account.ProfileID)
	assert.Equal(t, "Nguyễn Hà", profile.Name)
	require.NotNil(t, profile.ListSubProfile)
	require.NotNil(t, profile.ListSuperProfile)
}

package entity

import (
	"errors"
	"testing"

	domainerrors "roster/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireRole(t *testing.T) {
	assert.NoError(t, RequireRole(RoleAdmin, RoleAdmin, RoleStaff))
	assert.NoError(t, RequireRole(RoleStaff, RoleAdmin, RoleStaff))

	err := RequireRole(RoleCustomer, RoleAdmin, RoleStaff)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))

	assert.Error(t, RequireRole(Role("guest")))
}

func TestRole_Capabilities(t *testing.T) {
	assert.True(t, RoleAdmin.Capabilities().CanManageStaff)
	assert.True(t, RoleStaff.Capabilities().RequiresOwnershipCheck)
	assert.False(t, RoleCustomer.Capabilities().CanManageCustomers)
	assert.Equal(t, Capabilities{}, Role("guest").Capabilities())
	assert.Equal(t, Roles{RoleAdmin, RoleCustomer}, RolesFromStrings([]string{"admin", "guest", "customer"}))
}

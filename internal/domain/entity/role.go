// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	domainerrors "roster/internal/domain/errors"
)

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleAdmin sits at the top of the hierarchy and manages staff.
	RoleAdmin Role = "admin"
	// RoleStaff manages the customers assigned to it.
	RoleStaff Role = "staff"
	// RoleCustomer is a managed end user.
	RoleCustomer Role = "customer"
)

// Capabilities describes what a role may do inside the hierarchy.
type Capabilities struct {
	CanManageStaff         bool // May create, read and update staff records and reassign customers.
	CanManageCustomers     bool // May create, read and update customer records.
	RequiresOwnershipCheck bool // Customer access is limited to the actor's own sub-list.
	OwnsSubList            bool // Profiles of this role carry a listSubProfile edge list.
	OwnsSuperList          bool // Profiles of this role carry a listSuperProfile edge list.
}

var capabilities = map[Role]Capabilities{
	RoleAdmin: {
		CanManageStaff:     true,
		CanManageCustomers: true,
		OwnsSubList:        true,
	},
	RoleStaff: {
		CanManageCustomers:     true,
		RequiresOwnershipCheck: true,
		OwnsSubList:            true,
		OwnsSuperList:          true,
	},
	RoleCustomer: {
		OwnsSuperList: true,
	},
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	_, ok := capabilities[r]

	return ok
}

// Capabilities returns the capability set of the role. Unknown roles get none.
func (r Role) Capabilities() Capabilities {
	return capabilities[r]
}

// RequireRole fails with ErrAccessDenied unless actorRole is one of allowed.
func RequireRole(actorRole Role, allowed ...Role) error {
	if Roles(allowed).Contains(actorRole) {
		return nil
	}

	return domainerrors.ErrAccessDenied.WithDetails("role " + actorRole.String() + " is not allowed")
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

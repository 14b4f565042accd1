package status

import (
	"fmt"

	"lifecycle/internal/pkg/errs"
)

// Role is the actor role attached to a status-change request. Roles are
// resolved by the external auth layer; the engine only consumes them.
type Role string

const (
	// RoleClient is a portal customer. Customers never mutate status
	// directly, so the role carries an empty transition set.
	RoleClient Role = "client"

	// RoleWarehouseAdmin is warehouse floor staff with the operational
	// subset of transitions.
	RoleWarehouseAdmin Role = "warehouse_admin"

	// RoleAdmin is back-office staff with the full status universe.
	RoleAdmin Role = "admin"

	// RoleSuperAdmin can force any status of any kind.
	RoleSuperAdmin Role = "superadmin"
)

// Validate rejects unknown roles. Like Kind, an unrecognized role string is
// an integration bug in the caller.
func (r Role) Validate() error {
	switch r {
	case RoleClient, RoleWarehouseAdmin, RoleAdmin, RoleSuperAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("actor role",
			fmt.Errorf("%q is not a known role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}

package workflow

import (
	"lifecycle/internal/core/domain/model/status"
)

// PermissionTable maps actor roles to the destination statuses they may set.
// Permission sets are kind-qualified: "arrived" names different states for
// packages and shipments, so a flat union of strings would grant spurious
// overlap between the two lifecycles.
type PermissionTable struct {
	allowed map[status.Role]map[status.Kind]map[status.Value]struct{}
	ordered map[status.Role]map[status.Kind][]status.Value
}

// warehousePackageDestinations is the operational subset the warehouse floor
// may set on packages. Customer-decision states (pending_action, approved)
// and the intake state are excluded; those are set by back-office admins or
// at creation.
var warehousePackageDestinations = []status.Value{
	status.Arrived,
	status.Inspected,
	status.ReadyForReview,
	status.Consolidated,
	status.OnHold,
	status.ReadyForShipment,
	status.Shipped,
	status.InTransit,
	status.CustomsClearance,
	status.OutForDelivery,
	status.Delivered,
	status.Returned,
	status.Lost,
	status.Damaged,
}

// warehouseShipmentDestinations is the operational subset for shipments.
// Quoting, payment and cancellation stay with back-office admins.
var warehouseShipmentDestinations = []status.Value{
	status.Processing,
	status.Shipped,
	status.InTransit,
	status.CustomsClearance,
	status.Arrived,
	status.OutForDelivery,
	status.Delivered,
}

// NewPermissionTable builds the production role permission table.
//
// admin and superadmin receive the full status universe of both kinds; super
// users can force any status. client receives the empty set: customers never
// mutate status directly.
func NewPermissionTable() *PermissionTable {
	full := map[status.Kind][]status.Value{
		status.KindPackage:  statusUniverse(status.KindPackage),
		status.KindShipment: statusUniverse(status.KindShipment),
	}

	return NewPermissionTableFromGrants(map[status.Role]map[status.Kind][]status.Value{
		status.RoleClient: {},
		status.RoleWarehouseAdmin: {
			status.KindPackage:  warehousePackageDestinations,
			status.KindShipment: warehouseShipmentDestinations,
		},
		status.RoleAdmin:      full,
		status.RoleSuperAdmin: full,
	})
}

// NewPermissionTableFromGrants builds a table from caller-supplied grants.
// Tests use this to exercise the validator with reduced permissions.
func NewPermissionTableFromGrants(grants map[status.Role]map[status.Kind][]status.Value) *PermissionTable {
	t := &PermissionTable{
		allowed: make(map[status.Role]map[status.Kind]map[status.Value]struct{}),
		ordered: make(map[status.Role]map[status.Kind][]status.Value),
	}
	for role, kinds := range grants {
		t.allowed[role] = make(map[status.Kind]map[status.Value]struct{})
		t.ordered[role] = make(map[status.Kind][]status.Value)
		for kind, values := range kinds {
			set := make(map[status.Value]struct{}, len(values))
			list := make([]status.Value, 0, len(values))
			for _, v := range values {
				if _, dup := set[v]; dup {
					continue
				}
				set[v] = struct{}{}
				list = append(list, v)
			}
			t.allowed[role][kind] = set
			t.ordered[role][kind] = list
		}
	}
	return t
}

// Allowed returns the destinations a role may set for a kind, in grant order.
// A role absent from the table has no permissions; that is not an error.
func (t *PermissionTable) Allowed(role status.Role, kind status.Kind) []status.Value {
	src := t.ordered[role][kind]
	out := make([]status.Value, len(src))
	copy(out, src)
	return out
}

// IsAuthorized reports whether the role may set the given destination status.
func (t *PermissionTable) IsAuthorized(role status.Role, kind status.Kind, value status.Value) bool {
	_, ok := t.allowed[role][kind][value]
	return ok
}

// statusUniverse lists every registered status of a kind in catalog order.
func statusUniverse(kind status.Kind) []status.Value {
	infos := status.AllStatuses(kind)
	out := make([]status.Value, len(infos))
	for i, info := range infos {
		out[i] = info.Value
	}
	return out
}

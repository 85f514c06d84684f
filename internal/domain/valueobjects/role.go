package valueobjects

import (
	"imoveis_xpto/pkg"
)

// RelationRole is the role a user plays on an apartment. Role values are
// embedded verbatim in the relation sort keys, so they never change case.

type RelationRole string

const (
	RolePrimaryTenant    RelationRole = "PRIMARY_TENANT"
	RoleSecondaryTenant  RelationRole = "SECONDARY_TENANT"
	RoleEmergencyContact RelationRole = "EMERGENCY_CONTACT"
	RoleAdmin            RelationRole = "ADMIN"
	RoleOps              RelationRole = "OPS"
)

// RoleCapabilities are derived from the role, never stored.
type RoleCapabilities struct {
	CanManagePayments       bool
	CanViewApartmentDetails bool
	IsStaff                 bool
}

var roleCapabilities = map[RelationRole]RoleCapabilities{
	RolePrimaryTenant:    {CanManagePayments: true, CanViewApartmentDetails: true},
	RoleSecondaryTenant:  {CanManagePayments: true, CanViewApartmentDetails: true},
	RoleEmergencyContact: {CanViewApartmentDetails: true},
	RoleAdmin:            {CanManagePayments: true, CanViewApartmentDetails: true, IsStaff: true},
	RoleOps:              {CanManagePayments: true, CanViewApartmentDetails: true, IsStaff: true},
}

// rolePriority is the global ordering used whenever users are listed for
// an apartment: tenants first, then contacts, then staff.
var rolePriority = []RelationRole{
	RolePrimaryTenant,
	RoleSecondaryTenant,
	RoleEmergencyContact,
	RoleAdmin,
	RoleOps,
}

func ParseRelationRole(raw string) (RelationRole, error) {
	role := RelationRole(raw)
	if _, ok := roleCapabilities[role]; !ok {
		return "", pkg.NewValidationError("role: unknown role " + raw)
	}
	return role, nil
}

func (r RelationRole) Capabilities() RoleCapabilities {
	return roleCapabilities[r]
}

func (r RelationRole) IsValid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Priority returns the sort rank of the role; unknown roles sort last.
func (r RelationRole) Priority() int {
	for i, role := range rolePriority {
		if role == r {
			return i
		}
	}
	return len(rolePriority)
}

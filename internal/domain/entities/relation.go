package entities

import (
	"fmt"
	"strings"

	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/pkg"
)

// UserApartmentRelation links a user to an apartment with a role.
// Storage model:
//   - PK: APARTMENT#<unitCode>
//   - SK: USER#<phoneE164>#<role>
//   - GSI1PK: USER#<phoneE164>
//   - GSI1SK: APARTMENT#<unitCode>#<role>
//
// The "one active PRIMARY_TENANT per apartment" rule lives in the
// relationship usecase, not here: it needs the sibling relations.

type UserApartmentRelation struct {
	ApartmentUnitCode string
	UserPhone         string
	Role              valueobjects.RelationRole
	RelationshipType  string
	IsActive          bool
	Metadata          valueobjects.EntityMetadata
}

type NewRelationProps struct {
	ApartmentUnitCode string
	UserPhone         string
	Role              valueobjects.RelationRole
	RelationshipType  string
	CreatedBy         string
}

func NewUserApartmentRelation(props NewRelationProps) (*UserApartmentRelation, error) {
	if strings.TrimSpace(props.ApartmentUnitCode) == "" {
		return nil, pkg.NewValidationError("relation.apartment_unit_code: cannot be empty")
	}
	if strings.TrimSpace(props.UserPhone) == "" {
		return nil, pkg.NewValidationError("relation.user_phone: cannot be empty")
	}
	if !props.Role.IsValid() {
		return nil, pkg.NewValidationError("relation.role: unknown role " + string(props.Role))
	}
	relType := strings.TrimSpace(props.RelationshipType)
	if props.Role == valueobjects.RoleSecondaryTenant && relType == "" {
		return nil, pkg.NewValidationError("relation.relationship_type: required for secondary tenants")
	}

	return &UserApartmentRelation{
		ApartmentUnitCode: strings.TrimSpace(props.ApartmentUnitCode),
		UserPhone:         strings.TrimSpace(props.UserPhone),
		Role:              props.Role,
		RelationshipType:  relType,
		IsActive:          true,
		Metadata:          valueobjects.NewEntityMetadata(props.CreatedBy),
	}, nil
}

func (r *UserApartmentRelation) PK() string {
	return ApartmentPartitionKey(r.ApartmentUnitCode)
}

func (r *UserApartmentRelation) SK() string {
	return fmt.Sprintf("%s%s#%s", userKeyPrefix, r.UserPhone, r.Role)
}

func (r *UserApartmentRelation) GSI1PK() string {
	return UserPartitionKey(r.UserPhone)
}

func (r *UserApartmentRelation) GSI1SK() string {
	return fmt.Sprintf("%s%s#%s", apartmentKeyPrefix, r.ApartmentUnitCode, r.Role)
}

func (r *UserApartmentRelation) Activate(actor string) error {
	if r.IsActive {
		return pkg.NewBusinessRuleViolation("relation is already active")
	}
	r.IsActive = true
	r.Metadata = r.Metadata.Touch(actor)
	return nil
}

func (r *UserApartmentRelation) Deactivate(actor string) error {
	if !r.IsActive {
		return pkg.NewBusinessRuleViolation("relation is already inactive")
	}
	r.IsActive = false
	r.Metadata = r.Metadata.Touch(actor)
	return nil
}

func (r *UserApartmentRelation) Capabilities() valueobjects.RoleCapabilities {
	return r.Role.Capabilities()
}

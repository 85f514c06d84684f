package response

import (
	"imoveis_xpto/internal/domain/entities"
)

type CapabilitiesResponse struct {
	CanManagePayments       bool `json:"can_manage_payments"`
	CanViewApartmentDetails bool `json:"can_view_apartment_details"`
	IsStaff                 bool `json:"is_staff"`
}

type RelationshipResponse struct {
	ApartmentUnitCode string               `json:"apartment_unit_code"`
	UserPhone         string               `json:"user_phone"`
	Role              string               `json:"role"`
	RelationshipType  string               `json:"relationship_type,omitempty"`
	IsActive          bool                 `json:"is_active"`
	Capabilities      CapabilitiesResponse `json:"capabilities"`
	Metadata          MetadataResponse     `json:"metadata"`
}

func FromRelationship(r *entities.UserApartmentRelation) RelationshipResponse {
	caps := r.Capabilities()
	return RelationshipResponse{
		ApartmentUnitCode: r.ApartmentUnitCode,
		UserPhone:         r.UserPhone,
		Role:              string(r.Role),
		RelationshipType:  r.RelationshipType,
		IsActive:          r.IsActive,
		Capabilities: CapabilitiesResponse{
			CanManagePayments:       caps.CanManagePayments,
			CanViewApartmentDetails: caps.CanViewApartmentDetails,
			IsStaff:                 caps.IsStaff,
		},
		Metadata: fromMetadata(r.Metadata),
	}
}

func FromRelationships(relations []*entities.UserApartmentRelation) []RelationshipResponse {
	out := make([]RelationshipResponse, 0, len(relations))
	for _, r := range relations {
		out = append(out, FromRelationship(r))
	}
	return out
}

package request

import (
	"strings"

	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/internal/usecase"
	"imoveis_xpto/pkg"
)

type CreateRelationshipRequest struct {
	UserPhone        string `json:"user_phone" binding:"required"`
	Role             string `json:"role" binding:"required"`
	RelationshipType string `json:"relationship_type"`
	Actor            string `json:"actor"`
}

func (r CreateRelationshipRequest) Validate() error {
	var fields []pkg.FieldError
	if strings.TrimSpace(r.UserPhone) == "" {
		fields = append(fields, pkg.FieldError{Field: "user_phone", Message: "cannot be empty"})
	}
	if !valueobjects.RelationRole(r.Role).IsValid() {
		fields = append(fields, pkg.FieldError{Field: "role", Message: "unknown role " + r.Role})
	}
	if len(fields) > 0 {
		return pkg.NewValidationErrorFields(fields)
	}
	return nil
}

func (r CreateRelationshipRequest) ToInput(unitCode string) usecase.CreateRelationshipInput {
	return usecase.CreateRelationshipInput{
		ApartmentUnitCode: strings.TrimSpace(unitCode),
		UserPhone:         strings.TrimSpace(r.UserPhone),
		Role:              valueobjects.RelationRole(r.Role),
		RelationshipType:  strings.TrimSpace(r.RelationshipType),
		CreatedBy:         actorOrDefault(r.Actor),
	}
}

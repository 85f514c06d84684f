package interfaces

import (
	"context"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/domain/valueobjects"
)

// IRelationRepository abstracts DynamoDB persistence for
// UserApartmentRelation. User-side lookups run on GSI1.

type IRelationRepository interface {
	Create(ctx context.Context, r *entities.UserApartmentRelation) (*entities.UserApartmentRelation, error)
	Get(ctx context.Context, unitCode, phoneE164 string, role valueobjects.RelationRole) (*entities.UserApartmentRelation, error)
	ListByApartment(ctx context.Context, unitCode string) ([]*entities.UserApartmentRelation, error)
	ListByApartmentRole(ctx context.Context, unitCode string, role valueobjects.RelationRole) ([]*entities.UserApartmentRelation, error)
	ListByUser(ctx context.Context, phoneE164 string) ([]*entities.UserApartmentRelation, error)
	Save(ctx context.Context, r *entities.UserApartmentRelation) (*entities.UserApartmentRelation, error)
	Delete(ctx context.Context, unitCode, phoneE164 string, role valueobjects.RelationRole) error
}

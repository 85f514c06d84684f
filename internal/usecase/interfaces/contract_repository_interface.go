package interfaces

import (
	"context"

	"imoveis_xpto/internal/domain/entities"
)

// IContractRepository abstracts DynamoDB persistence for Contract.
//
// Apartment-side lookups run on GSI1 (GSI1PK APARTMENT#<unit>,
// GSI1SK CONTRACT#<startDate>), newest first.

type IContractRepository interface {
	Create(ctx context.Context, c *entities.Contract) (*entities.Contract, error)
	GetByID(ctx context.Context, contractID string) (*entities.Contract, error)
	ListByApartment(ctx context.Context, unitCode string) ([]*entities.Contract, error)
	FindActiveByApartment(ctx context.Context, unitCode string) (*entities.Contract, error)
	Save(ctx context.Context, c *entities.Contract) (*entities.Contract, error)
	Delete(ctx context.Context, contractID string) error
}

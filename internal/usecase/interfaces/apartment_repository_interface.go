package interfaces

import (
	"context"

	"imoveis_xpto/internal/domain/entities"
)

// IApartmentRepository abstracts DynamoDB persistence for Apartment.

type IApartmentRepository interface {
	Create(ctx context.Context, a *entities.Apartment) (*entities.Apartment, error)
	GetByUnitCode(ctx context.Context, unitCode string) (*entities.Apartment, error)
	List(ctx context.Context) ([]*entities.Apartment, error)
	ListByStatus(ctx context.Context, status entities.ApartmentStatus) ([]*entities.Apartment, error)
	Save(ctx context.Context, a *entities.Apartment) (*entities.Apartment, error)
	Delete(ctx context.Context, unitCode string) error
}

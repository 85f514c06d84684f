package interfaces

import (
	"context"
	"time"

	"imoveis_xpto/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// The sort key PAYMENT#<createdAtMillis>#<id> makes apartment listings
// chronological; ListByContract runs on GSI1 ordered by due date.

type IPaymentRepository interface {
	Create(ctx context.Context, p *entities.Payment) (*entities.Payment, error)
	GetByID(ctx context.Context, unitCode, paymentID string) (*entities.Payment, error)
	ListByApartment(ctx context.Context, unitCode string) ([]*entities.Payment, error)
	ListByApartmentBetween(ctx context.Context, unitCode string, from, to time.Time) ([]*entities.Payment, error)
	ListByContract(ctx context.Context, contractID string) ([]*entities.Payment, error)
	ListPendingDueBefore(ctx context.Context, cutoff time.Time) ([]*entities.Payment, error)
	Save(ctx context.Context, p *entities.Payment) (*entities.Payment, error)
}

package interfaces

import (
	"context"

	"imoveis_xpto/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// Save performs a conditional write on the metadata version and returns
// a BUSINESS_RULE_VIOLATION (STALE_VERSION) error on a lost race.

type IUserRepository interface {
	Create(ctx context.Context, u *entities.User) (*entities.User, error)
	GetByPhone(ctx context.Context, phoneE164 string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
	Save(ctx context.Context, u *entities.User) (*entities.User, error)
	Delete(ctx context.Context, phoneE164 string) error
}

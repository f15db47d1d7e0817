package interfaces

import (
	"context"

	"fitmarket/internal/domain/entities"
)

// IUserRepository abstracts the platform-account store used by auth and
// admin aggregation.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}

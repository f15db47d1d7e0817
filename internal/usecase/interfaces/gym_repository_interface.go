package interfaces

import (
	"context"

	"fitmarket/internal/domain/entities"
)

// IGymRepository abstracts the partner-gym store.

type IGymRepository interface {
	Create(ctx context.Context, g entities.Gym) (entities.Gym, error)
	GetByID(ctx context.Context, id string) (entities.Gym, error)
	List(ctx context.Context, filter entities.GymFilter) ([]entities.Gym, error)
	Update(ctx context.Context, g entities.Gym) (entities.Gym, error)
	Delete(ctx context.Context, id string) (bool, error)
}

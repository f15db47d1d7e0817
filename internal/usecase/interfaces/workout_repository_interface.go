package interfaces

import (
	"context"

	"fitmarket/internal/domain/entities"
)

// IWorkoutRepository abstracts the workout store.

type IWorkoutRepository interface {
	Create(ctx context.Context, w entities.Workout) (entities.Workout, error)
	GetByID(ctx context.Context, id string) (entities.Workout, error)
	List(ctx context.Context, filter entities.WorkoutFilter) ([]entities.Workout, error)
	Update(ctx context.Context, w entities.Workout) (entities.Workout, error)
	Delete(ctx context.Context, id string) (bool, error)
}

package interfaces

import (
	"context"

	"fitmarket/internal/domain/entities"
)

// IStudentRepository abstracts the student store.

type IStudentRepository interface {
	Create(ctx context.Context, s entities.Student) (entities.Student, error)
	GetByID(ctx context.Context, id string) (entities.Student, error)
	List(ctx context.Context, filter entities.StudentFilter) ([]entities.Student, error)
	Update(ctx context.Context, s entities.Student) (entities.Student, error)
	Delete(ctx context.Context, id string) (bool, error)
}

package interfaces

import (
	"context"

	"fitmarket/internal/domain/entities"
)

// IAssessmentRepository abstracts the physical-assessment store.

type IAssessmentRepository interface {
	Create(ctx context.Context, a entities.PhysicalAssessment) (entities.PhysicalAssessment, error)
	GetByID(ctx context.Context, id string) (entities.PhysicalAssessment, error)
	List(ctx context.Context, filter entities.AssessmentFilter) ([]entities.PhysicalAssessment, error)
	Update(ctx context.Context, a entities.PhysicalAssessment) (entities.PhysicalAssessment, error)
	Delete(ctx context.Context, id string) (bool, error)
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAssessmentNotFound     = errors.New("assessment not found")
	ErrInvalidAssessmentID    = errors.New("invalid assessment id")
	ErrInvalidAssessmentInput = errors.New("invalid assessment input")
)

// UpdateAssessmentCommand is a shallow merge: nil fields leave the
// stored value untouched. IMC is always recomputed from the resulting
// weight/height pair.

type UpdateAssessmentCommand struct {
	Weight       *float64
	Height       *float64
	BodyFat      *float64
	MuscleMass   *float64
	Measurements *entities.BodyMeasurements
	Notes        *string
}

type IAssessmentUseCase interface {
	Create(ctx context.Context, a entities.PhysicalAssessment) (entities.PhysicalAssessment, error)
	GetByID(ctx context.Context, id string) (entities.PhysicalAssessment, error)
	List(ctx context.Context, filter entities.AssessmentFilter) ([]entities.PhysicalAssessment, error)
	Update(ctx context.Context, id string, cmd UpdateAssessmentCommand) (entities.PhysicalAssessment, error)
	Delete(ctx context.Context, id string) error
	HistoryByStudent(ctx context.Context, studentID string) ([]entities.PhysicalAssessment, error)
}

type AssessmentUseCase struct {
	repo interfaces.IAssessmentRepository
}

var _ IAssessmentUseCase = (*AssessmentUseCase)(nil)

func NewAssessmentUseCase(repo interfaces.IAssessmentRepository) *AssessmentUseCase {
	return &AssessmentUseCase{repo: repo}
}

func (u *AssessmentUseCase) Create(ctx context.Context, a entities.PhysicalAssessment) (entities.PhysicalAssessment, error) {
	if strings.TrimSpace(a.StudentID) == "" || strings.TrimSpace(a.PartnerID) == "" {
		return entities.PhysicalAssessment{}, ErrInvalidAssessmentInput
	}
	if a.Weight <= 0 || a.Height <= 0 {
		return entities.PhysicalAssessment{}, ErrInvalidAssessmentInput
	}

	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.IMC = entities.CalculateIMC(a.Weight, a.Height)
	a.CreatedAt = now
	a.UpdatedAt = now
	return u.repo.Create(ctx, a)
}

func (u *AssessmentUseCase) GetByID(ctx context.Context, id string) (entities.PhysicalAssessment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PhysicalAssessment{}, ErrInvalidAssessmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PhysicalAssessment{}, err
	}
	if a.ID == "" {
		return entities.PhysicalAssessment{}, ErrAssessmentNotFound
	}
	return a, nil
}

func (u *AssessmentUseCase) List(ctx context.Context, filter entities.AssessmentFilter) ([]entities.PhysicalAssessment, error) {
	return u.repo.List(ctx, filter)
}

func (u *AssessmentUseCase) Update(ctx context.Context, id string, cmd UpdateAssessmentCommand) (entities.PhysicalAssessment, error) {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PhysicalAssessment{}, err
	}

	if cmd.Weight != nil {
		if *cmd.Weight <= 0 {
			return entities.PhysicalAssessment{}, ErrInvalidAssessmentInput
		}
		a.Weight = *cmd.Weight
	}
	if cmd.Height != nil {
		if *cmd.Height <= 0 {
			return entities.PhysicalAssessment{}, ErrInvalidAssessmentInput
		}
		a.Height = *cmd.Height
	}
	if cmd.BodyFat != nil {
		a.BodyFat = *cmd.BodyFat
	}
	if cmd.MuscleMass != nil {
		a.MuscleMass = *cmd.MuscleMass
	}
	if cmd.Measurements != nil {
		a.Measurements = *cmd.Measurements
	}
	if cmd.Notes != nil {
		a.Notes = *cmd.Notes
	}

	a.IMC = entities.CalculateIMC(a.Weight, a.Height)
	a.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, a)
	if err != nil {
		return entities.PhysicalAssessment{}, err
	}
	if updated.ID == "" {
		return entities.PhysicalAssessment{}, ErrAssessmentNotFound
	}
	return updated, nil
}

func (u *AssessmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAssessmentID
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAssessmentNotFound
	}
	return nil
}

// HistoryByStudent returns every assessment of a student, newest first,
// for progress charts.
func (u *AssessmentUseCase) HistoryByStudent(ctx context.Context, studentID string) ([]entities.PhysicalAssessment, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, ErrInvalidAssessmentInput
	}
	return u.repo.List(ctx, entities.AssessmentFilter{StudentID: studentID})
}

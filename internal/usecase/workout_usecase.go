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
	ErrWorkoutNotFound     = errors.New("workout not found")
	ErrInvalidWorkoutID    = errors.New("invalid workout id")
	ErrInvalidWorkoutInput = errors.New("invalid workout input")
)

// UpdateWorkoutCommand is a shallow merge: nil fields leave the stored
// value untouched.

type UpdateWorkoutCommand struct {
	Name        *string
	Description *string
	Objective   *string
	Exercises   *[]entities.Exercise
}

type IWorkoutUseCase interface {
	Create(ctx context.Context, w entities.Workout) (entities.Workout, error)
	GetByID(ctx context.Context, id string) (entities.Workout, error)
	List(ctx context.Context, filter entities.WorkoutFilter) ([]entities.Workout, error)
	Update(ctx context.Context, id string, cmd UpdateWorkoutCommand) (entities.Workout, error)
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, id, studentID, studentName string) (entities.Workout, error)
}

type WorkoutUseCase struct {
	repo interfaces.IWorkoutRepository
}

var _ IWorkoutUseCase = (*WorkoutUseCase)(nil)

func NewWorkoutUseCase(repo interfaces.IWorkoutRepository) *WorkoutUseCase {
	return &WorkoutUseCase{repo: repo}
}

func (u *WorkoutUseCase) Create(ctx context.Context, w entities.Workout) (entities.Workout, error) {
	if strings.TrimSpace(w.PartnerID) == "" || strings.TrimSpace(w.Name) == "" {
		return entities.Workout{}, ErrInvalidWorkoutInput
	}

	now := time.Now().UTC()
	w.ID = uuid.NewString()
	w.Name = strings.TrimSpace(w.Name)
	if w.Exercises == nil {
		w.Exercises = []entities.Exercise{}
	}
	w.CreatedAt = now
	w.UpdatedAt = now
	return u.repo.Create(ctx, w)
}

func (u *WorkoutUseCase) GetByID(ctx context.Context, id string) (entities.Workout, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Workout{}, ErrInvalidWorkoutID
	}

	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Workout{}, err
	}
	if w.ID == "" {
		return entities.Workout{}, ErrWorkoutNotFound
	}
	return w, nil
}

func (u *WorkoutUseCase) List(ctx context.Context, filter entities.WorkoutFilter) ([]entities.Workout, error) {
	return u.repo.List(ctx, filter)
}

func (u *WorkoutUseCase) Update(ctx context.Context, id string, cmd UpdateWorkoutCommand) (entities.Workout, error) {
	w, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Workout{}, err
	}

	if cmd.Name != nil {
		w.Name = strings.TrimSpace(*cmd.Name)
	}
	if cmd.Description != nil {
		w.Description = *cmd.Description
	}
	if cmd.Objective != nil {
		w.Objective = *cmd.Objective
	}
	if cmd.Exercises != nil {
		w.Exercises = *cmd.Exercises
	}
	w.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, w)
	if err != nil {
		return entities.Workout{}, err
	}
	if updated.ID == "" {
		return entities.Workout{}, ErrWorkoutNotFound
	}
	return updated, nil
}

func (u *WorkoutUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWorkoutID
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWorkoutNotFound
	}
	return nil
}

// Assign hands a workout plan to a student.
func (u *WorkoutUseCase) Assign(ctx context.Context, id, studentID, studentName string) (entities.Workout, error) {
	if strings.TrimSpace(studentID) == "" {
		return entities.Workout{}, ErrInvalidWorkoutInput
	}

	w, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Workout{}, err
	}

	w.StudentID = strings.TrimSpace(studentID)
	w.StudentName = strings.TrimSpace(studentName)
	w.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, w)
	if err != nil {
		return entities.Workout{}, err
	}
	if updated.ID == "" {
		return entities.Workout{}, ErrWorkoutNotFound
	}
	return updated, nil
}

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
	ErrStudentNotFound     = errors.New("student not found")
	ErrInvalidStudentID    = errors.New("invalid student id")
	ErrInvalidStudentInput = errors.New("invalid student input")
)

type UpdateStudentCommand struct {
	Name      *string
	Email     *string
	Phone     *string
	BirthDate *string
	Goal      *string
	Status    *entities.StudentStatus
}

type IStudentUseCase interface {
	Create(ctx context.Context, s entities.Student) (entities.Student, error)
	GetByID(ctx context.Context, id string) (entities.Student, error)
	List(ctx context.Context, filter entities.StudentFilter) ([]entities.Student, error)
	Update(ctx context.Context, id string, cmd UpdateStudentCommand) (entities.Student, error)
	Delete(ctx context.Context, id string) error
}

type StudentUseCase struct {
	repo interfaces.IStudentRepository
}

var _ IStudentUseCase = (*StudentUseCase)(nil)

func NewStudentUseCase(repo interfaces.IStudentRepository) *StudentUseCase {
	return &StudentUseCase{repo: repo}
}

func (u *StudentUseCase) Create(ctx context.Context, s entities.Student) (entities.Student, error) {
	if strings.TrimSpace(s.PartnerID) == "" || strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Email) == "" {
		return entities.Student{}, ErrInvalidStudentInput
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	if s.Status == "" {
		s.Status = entities.StudentStatusActive
	}
	s.CreatedAt = now
	s.UpdatedAt = now
	return u.repo.Create(ctx, s)
}

func (u *StudentUseCase) GetByID(ctx context.Context, id string) (entities.Student, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Student{}, ErrInvalidStudentID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Student{}, err
	}
	if s.ID == "" {
		return entities.Student{}, ErrStudentNotFound
	}
	return s, nil
}

func (u *StudentUseCase) List(ctx context.Context, filter entities.StudentFilter) ([]entities.Student, error) {
	return u.repo.List(ctx, filter)
}

func (u *StudentUseCase) Update(ctx context.Context, id string, cmd UpdateStudentCommand) (entities.Student, error) {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Student{}, err
	}

	if cmd.Name != nil {
		s.Name = strings.TrimSpace(*cmd.Name)
	}
	if cmd.Email != nil {
		s.Email = strings.ToLower(strings.TrimSpace(*cmd.Email))
	}
	if cmd.Phone != nil {
		s.Phone = *cmd.Phone
	}
	if cmd.BirthDate != nil {
		s.BirthDate = *cmd.BirthDate
	}
	if cmd.Goal != nil {
		s.Goal = *cmd.Goal
	}
	if cmd.Status != nil {
		s.Status = *cmd.Status
	}
	s.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.Student{}, err
	}
	if updated.ID == "" {
		return entities.Student{}, ErrStudentNotFound
	}
	return updated, nil
}

func (u *StudentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidStudentID
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrStudentNotFound
	}
	return nil
}

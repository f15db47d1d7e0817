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
	ErrGymNotFound     = errors.New("gym not found")
	ErrInvalidGymID    = errors.New("invalid gym id")
	ErrInvalidGymInput = errors.New("invalid gym input")
)

type UpdateGymCommand struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	City    *string
	State   *string
	Plan    *entities.GymPlan
	Status  *entities.GymStatus
}

type IGymUseCase interface {
	Create(ctx context.Context, g entities.Gym) (entities.Gym, error)
	GetByID(ctx context.Context, id string) (entities.Gym, error)
	List(ctx context.Context, filter entities.GymFilter) ([]entities.Gym, error)
	Update(ctx context.Context, id string, cmd UpdateGymCommand) (entities.Gym, error)
	Delete(ctx context.Context, id string) error
}

type GymUseCase struct {
	repo interfaces.IGymRepository
}

var _ IGymUseCase = (*GymUseCase)(nil)

func NewGymUseCase(repo interfaces.IGymRepository) *GymUseCase {
	return &GymUseCase{repo: repo}
}

func (u *GymUseCase) Create(ctx context.Context, g entities.Gym) (entities.Gym, error) {
	if strings.TrimSpace(g.Name) == "" || strings.TrimSpace(g.Email) == "" {
		return entities.Gym{}, ErrInvalidGymInput
	}

	now := time.Now().UTC()
	g.ID = uuid.NewString()
	g.Name = strings.TrimSpace(g.Name)
	g.Email = strings.ToLower(strings.TrimSpace(g.Email))
	if g.Plan == "" {
		g.Plan = entities.GymPlanBasico
	}
	if g.Status == "" {
		g.Status = entities.GymStatusPending
	}
	g.CreatedAt = now
	g.UpdatedAt = now
	return u.repo.Create(ctx, g)
}

func (u *GymUseCase) GetByID(ctx context.Context, id string) (entities.Gym, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Gym{}, ErrInvalidGymID
	}

	g, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Gym{}, err
	}
	if g.ID == "" {
		return entities.Gym{}, ErrGymNotFound
	}
	return g, nil
}

func (u *GymUseCase) List(ctx context.Context, filter entities.GymFilter) ([]entities.Gym, error) {
	return u.repo.List(ctx, filter)
}

func (u *GymUseCase) Update(ctx context.Context, id string, cmd UpdateGymCommand) (entities.Gym, error) {
	g, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Gym{}, err
	}

	if cmd.Name != nil {
		g.Name = strings.TrimSpace(*cmd.Name)
	}
	if cmd.Email != nil {
		g.Email = strings.ToLower(strings.TrimSpace(*cmd.Email))
	}
	if cmd.Phone != nil {
		g.Phone = *cmd.Phone
	}
	if cmd.Address != nil {
		g.Address = *cmd.Address
	}
	if cmd.City != nil {
		g.City = *cmd.City
	}
	if cmd.State != nil {
		g.State = *cmd.State
	}
	if cmd.Plan != nil {
		g.Plan = *cmd.Plan
	}
	if cmd.Status != nil {
		g.Status = *cmd.Status
	}
	g.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, g)
	if err != nil {
		return entities.Gym{}, err
	}
	if updated.ID == "" {
		return entities.Gym{}, ErrGymNotFound
	}
	return updated, nil
}

func (u *GymUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidGymID
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrGymNotFound
	}
	return nil
}

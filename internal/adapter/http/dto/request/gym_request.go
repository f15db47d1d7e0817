package request

import (
	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase"
)

type CreateGymRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Plan    string `json:"plan"`
}

func (r CreateGymRequest) ToEntity() entities.Gym {
	return entities.Gym{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		Plan:    entities.GymPlan(r.Plan),
	}
}

type UpdateGymRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Plan    *string `json:"plan"`
	Status  *string `json:"status"`
}

func (r UpdateGymRequest) ToCommand() usecase.UpdateGymCommand {
	cmd := usecase.UpdateGymCommand{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
	}
	if r.Plan != nil {
		plan := entities.GymPlan(*r.Plan)
		cmd.Plan = &plan
	}
	if r.Status != nil {
		status := entities.GymStatus(*r.Status)
		cmd.Status = &status
	}
	return cmd
}

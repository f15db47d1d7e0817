package request

import (
	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

func (r RegisterRequest) ToCommand() usecase.RegisterCommand {
	return usecase.RegisterCommand{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
		Role:     entities.UserRole(r.Role),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

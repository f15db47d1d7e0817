package request

import (
	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase"
)

type CreateStudentRequest struct {
	PartnerID string `json:"partner_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
	Goal      string `json:"goal"`
}

func (r CreateStudentRequest) ToEntity() entities.Student {
	return entities.Student{
		PartnerID: r.PartnerID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		BirthDate: r.BirthDate,
		Goal:      r.Goal,
	}
}

type UpdateStudentRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birth_date"`
	Goal      *string `json:"goal"`
	Status    *string `json:"status"`
}

func (r UpdateStudentRequest) ToCommand() usecase.UpdateStudentCommand {
	cmd := usecase.UpdateStudentCommand{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		BirthDate: r.BirthDate,
		Goal:      r.Goal,
	}
	if r.Status != nil {
		status := entities.StudentStatus(*r.Status)
		cmd.Status = &status
	}
	return cmd
}

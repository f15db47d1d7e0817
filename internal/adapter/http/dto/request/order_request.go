package request

import (
	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase"
)

// CreateOrderRequest is the payload a user sends when acquiring a
// service from a partner.

type CreateOrderRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserPhone string `json:"user_phone"`

	PartnerID   string `json:"partner_id" binding:"required"`
	PartnerName string `json:"partner_name"`

	ServiceID   string  `json:"service_id" binding:"required"`
	ServiceName string  `json:"service_name" binding:"required"`
	ServiceType string  `json:"service_type" binding:"required"`
	Price       float64 `json:"price"`

	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	Notes         string `json:"notes"`
}

func (r CreateOrderRequest) ToCommand() usecase.CreateOrderCommand {
	return usecase.CreateOrderCommand{
		UserID:        r.UserID,
		UserName:      r.UserName,
		UserEmail:     r.UserEmail,
		UserPhone:     r.UserPhone,
		PartnerID:     r.PartnerID,
		PartnerName:   r.PartnerName,
		ServiceID:     r.ServiceID,
		ServiceName:   r.ServiceName,
		ServiceType:   entities.ServiceType(r.ServiceType),
		Price:         r.Price,
		ScheduledDate: r.ScheduledDate,
		ScheduledTime: r.ScheduledTime,
		Notes:         r.Notes,
	}
}

// CancelOrderRequest carries the optional cancellation reason appended
// to the order notes.

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// UpdatePaymentStatusRequest mutates the payment axis only.

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// LinkWorkoutRequest ties an existing workout to an order.

type LinkWorkoutRequest struct {
	WorkoutID string `json:"workout_id" binding:"required"`
}

// LinkAssessmentRequest ties an existing assessment to an order.

type LinkAssessmentRequest struct {
	AssessmentID string `json:"assessment_id" binding:"required"`
}

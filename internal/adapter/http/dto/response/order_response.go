package response

import (
	"time"

	"fitmarket/internal/domain/entities"
)

type OrderResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`

	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserPhone string `json:"user_phone,omitempty"`

	PartnerID   string `json:"partner_id"`
	PartnerName string `json:"partner_name"`

	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	ServiceType string  `json:"service_type"`
	Price       float64 `json:"price"`

	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`

	ScheduledDate string `json:"scheduled_date,omitempty"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
	Notes         string `json:"notes,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func FromOrder(o entities.ServiceOrder) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		UserID:        o.UserID,
		UserName:      o.UserName,
		UserEmail:     o.UserEmail,
		UserPhone:     o.UserPhone,
		PartnerID:     o.PartnerID,
		PartnerName:   o.PartnerName,
		ServiceID:     o.ServiceID,
		ServiceName:   o.ServiceName,
		ServiceType:   string(o.ServiceType),
		Price:         o.Price,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		ScheduledDate: o.ScheduledDate,
		ScheduledTime: o.ScheduledTime,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		ConfirmedAt:   o.ConfirmedAt,
		CompletedAt:   o.CompletedAt,
	}
}

func FromOrders(orders []entities.ServiceOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

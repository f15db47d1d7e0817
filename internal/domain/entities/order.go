package entities

import (
	"strings"
	"time"
)

// OrderStatus represents the fulfillment lifecycle of a service order.
//
// Domain notes:
//   - The marketplace-service is the source of truth for order state.
//   - Transitions are driven exclusively by partner-side actions
//     (confirm/start/complete/cancel) after a user acquires a service.
//   - completed and cancelled are terminal.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderAction is a partner-side command applied to an order.

type OrderAction string

const (
	OrderActionConfirm  OrderAction = "confirm"
	OrderActionStart    OrderAction = "start"
	OrderActionComplete OrderAction = "complete"
	OrderActionCancel   OrderAction = "cancel"
)

// orderTransitions is the single allowed-transition table for the order
// lifecycle. Every status mutation must go through Next; calling a
// transition method from a wrong prior state is rejected, never applied.
var orderTransitions = map[OrderStatus]map[OrderAction]OrderStatus{
	OrderStatusPending: {
		OrderActionConfirm: OrderStatusConfirmed,
		OrderActionCancel:  OrderStatusCancelled,
	},
	OrderStatusConfirmed: {
		OrderActionStart:  OrderStatusInProgress,
		OrderActionCancel: OrderStatusCancelled,
	},
	OrderStatusInProgress: {
		OrderActionComplete: OrderStatusCompleted,
		OrderActionCancel:   OrderStatusCancelled,
	},
	// completed and cancelled admit no further action.
}

// Next resolves the status produced by applying action to the current
// status. The second return is false when the transition is not allowed.
func (s OrderStatus) Next(action OrderAction) (OrderStatus, bool) {
	next, ok := orderTransitions[s][action]
	return next, ok
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// PaymentStatus is the payment axis of an order. It is orthogonal to
// OrderStatus and may change independently (a pending order can already
// be paid).

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// ServiceType is the closed set of services partners offer through the
// platform.

type ServiceType string

const (
	ServiceTypeTreinoPersonalizado ServiceType = "treino_personalizado"
	ServiceTypeAvaliacaoFisica     ServiceType = "avaliacao_fisica"
	ServiceTypePlanoMensal         ServiceType = "plano_mensal"
	ServiceTypeDayUse              ServiceType = "day_use"
	ServiceTypeAulaAvulsa          ServiceType = "aula_avulsa"
	ServiceTypePacote              ServiceType = "pacote"
)

func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceTypeTreinoPersonalizado, ServiceTypeAvaliacaoFisica, ServiceTypePlanoMensal,
		ServiceTypeDayUse, ServiceTypeAulaAvulsa, ServiceTypePacote:
		return true
	}
	return false
}

// ServiceOrder is a record of a user acquiring a service from a partner,
// tracked independently through fulfillment status and payment status.
//
// OrderNumber is a human-readable sequence (PED-<year>-<seq>) assigned by
// the repository at creation; it is unique and monotonically increasing
// within a store instance.

type ServiceOrder struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`

	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserPhone string `json:"user_phone,omitempty"`

	PartnerID   string `json:"partner_id"`
	PartnerName string `json:"partner_name"`

	ServiceID   string      `json:"service_id"`
	ServiceName string      `json:"service_name"`
	ServiceType ServiceType `json:"service_type"`
	Price       float64     `json:"price"`

	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	ScheduledDate string `json:"scheduled_date,omitempty"`
	ScheduledTime string `json:"scheduled_time,omitempty"`

	Notes string `json:"notes,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// AppendNote appends free text to the order notes, preserving any
// pre-existing text on its own line.
func (o *ServiceOrder) AppendNote(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	if o.Notes == "" {
		o.Notes = note
		return
	}
	o.Notes = o.Notes + "\n" + note
}

// OrderFilter is the conjunctive filter applied by order listings.
// Zero-valued fields are ignored.

type OrderFilter struct {
	Status        OrderStatus
	PaymentStatus PaymentStatus
	ServiceType   ServiceType
	PartnerID     string
	UserID        string
}

// Matches reports whether the order satisfies every set field.
func (f OrderFilter) Matches(o ServiceOrder) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.PaymentStatus != "" && o.PaymentStatus != f.PaymentStatus {
		return false
	}
	if f.ServiceType != "" && o.ServiceType != f.ServiceType {
		return false
	}
	if f.PartnerID != "" && o.PartnerID != f.PartnerID {
		return false
	}
	if f.UserID != "" && o.UserID != f.UserID {
		return false
	}
	return true
}

// OrderStats aggregates order counts per status plus revenue sums.
//
// MonthlyRevenue partitions by "this calendar month" using local
// wall-clock month/year equality, not a rolling 30-day window.

type OrderStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Confirmed  int `json:"confirmed"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`

	MonthlyOrders  int     `json:"monthly_orders"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	TotalRevenue   float64 `json:"total_revenue"`
}

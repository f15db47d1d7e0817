package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidOrderInput    = errors.New("invalid order input")
	ErrInvalidServiceType   = errors.New("invalid service type")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidTransition    = errors.New("invalid order status transition")
)

// CreateOrderCommand carries everything a user supplies when acquiring a
// service from a partner.

type CreateOrderCommand struct {
	UserID    string
	UserName  string
	UserEmail string
	UserPhone string

	PartnerID   string
	PartnerName string

	ServiceID   string
	ServiceName string
	ServiceType entities.ServiceType
	Price       float64

	ScheduledDate string
	ScheduledTime string
	Notes         string
}

// IOrderUseCase exposes the order lifecycle operations.
//
// Status transitions are centralized: every mutation resolves through the
// allowed-transition table on entities.OrderStatus, so calling a
// transition from a wrong prior state fails with ErrInvalidTransition
// instead of silently overwriting. The payment axis stays orthogonal and
// never gates fulfillment transitions.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.ServiceOrder, error)
	ConfirmOrder(ctx context.Context, id string) (entities.ServiceOrder, error)
	StartOrder(ctx context.Context, id string) (entities.ServiceOrder, error)
	CompleteOrder(ctx context.Context, id string) (entities.ServiceOrder, error)
	CancelOrder(ctx context.Context, id, reason string) (entities.ServiceOrder, error)
	UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.ServiceOrder, error)
	Stats(ctx context.Context, partnerID string) (entities.OrderStats, error)
	LinkWorkout(ctx context.Context, orderID, workoutID string) error
	LinkAssessment(ctx context.Context, orderID, assessmentID string) error
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.ServiceOrder, error) {
	if strings.TrimSpace(cmd.UserID) == "" ||
		strings.TrimSpace(cmd.PartnerID) == "" ||
		strings.TrimSpace(cmd.ServiceID) == "" ||
		strings.TrimSpace(cmd.ServiceName) == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderInput
	}
	if !cmd.ServiceType.IsValid() {
		return entities.ServiceOrder{}, ErrInvalidServiceType
	}

	now := time.Now().UTC()
	o := entities.ServiceOrder{
		ID:            uuid.NewString(),
		UserID:        strings.TrimSpace(cmd.UserID),
		UserName:      strings.TrimSpace(cmd.UserName),
		UserEmail:     strings.TrimSpace(cmd.UserEmail),
		UserPhone:     strings.TrimSpace(cmd.UserPhone),
		PartnerID:     strings.TrimSpace(cmd.PartnerID),
		PartnerName:   strings.TrimSpace(cmd.PartnerName),
		ServiceID:     strings.TrimSpace(cmd.ServiceID),
		ServiceName:   strings.TrimSpace(cmd.ServiceName),
		ServiceType:   cmd.ServiceType,
		Price:         cmd.Price,
		Status:        entities.OrderStatusPending,
		PaymentStatus: entities.PaymentStatusPending,
		ScheduledDate: cmd.ScheduledDate,
		ScheduledTime: cmd.ScheduledTime,
		Notes:         strings.TrimSpace(cmd.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, o)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) List(ctx context.Context, filter entities.OrderFilter) ([]entities.ServiceOrder, error) {
	return u.repo.List(ctx, filter)
}

func (u *OrderUseCase) ConfirmOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, entities.OrderActionConfirm, "")
}

func (u *OrderUseCase) StartOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, entities.OrderActionStart, "")
}

func (u *OrderUseCase) CompleteOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, entities.OrderActionComplete, "")
}

func (u *OrderUseCase) CancelOrder(ctx context.Context, id, reason string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, entities.OrderActionCancel, reason)
}

// transition is the only path that mutates the fulfillment axis.
// ConfirmedAt and CompletedAt are set exactly once, on entering the
// matching state. The write is conditional on the status read here, so
// of two concurrent transitions on one order only one lands; the loser
// fails like any other wrong-state call.
func (u *OrderUseCase) transition(ctx context.Context, id string, action entities.OrderAction, reason string) (entities.ServiceOrder, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	prev := o.Status
	next, ok := prev.Next(action)
	if !ok {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, prev)
	}

	now := time.Now().UTC()
	o.Status = next
	o.UpdatedAt = now

	switch next {
	case entities.OrderStatusConfirmed:
		o.ConfirmedAt = &now
	case entities.OrderStatusCompleted:
		o.CompletedAt = &now
	case entities.OrderStatusCancelled:
		o.AppendNote(reason)
	}

	updated, err := u.repo.UpdateIf(ctx, o, prev)
	if err != nil {
		if errors.Is(err, interfaces.ErrStatusConflict) {
			return entities.ServiceOrder{}, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, prev)
		}
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

// UpdatePaymentStatus mutates the payment axis only. It is deliberately
// decoupled from the fulfillment status.
func (u *OrderUseCase) UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.ServiceOrder, error) {
	if !status.IsValid() {
		return entities.ServiceOrder{}, ErrInvalidPaymentStatus
	}

	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	o.PaymentStatus = status
	o.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

// Stats aggregates counts per status and revenue sums, optionally scoped
// to one partner. Monthly figures use calendar month/year equality on the
// local wall clock, not a rolling 30-day window.
func (u *OrderUseCase) Stats(ctx context.Context, partnerID string) (entities.OrderStats, error) {
	orders, err := u.repo.List(ctx, entities.OrderFilter{PartnerID: strings.TrimSpace(partnerID)})
	if err != nil {
		return entities.OrderStats{}, err
	}

	now := time.Now()
	var stats entities.OrderStats
	for _, o := range orders {
		stats.Total++
		switch o.Status {
		case entities.OrderStatusPending:
			stats.Pending++
		case entities.OrderStatusConfirmed:
			stats.Confirmed++
		case entities.OrderStatusInProgress:
			stats.InProgress++
		case entities.OrderStatusCompleted:
			stats.Completed++
		case entities.OrderStatusCancelled:
			stats.Cancelled++
		}

		createdAt := o.CreatedAt.In(now.Location())
		sameMonth := createdAt.Year() == now.Year() && createdAt.Month() == now.Month()
		if sameMonth {
			stats.MonthlyOrders++
		}
		if o.PaymentStatus == entities.PaymentStatusPaid {
			stats.TotalRevenue += o.Price
			if sameMonth {
				stats.MonthlyRevenue += o.Price
			}
		}
	}
	return stats, nil
}

// LinkWorkout records the association between an order and a workout.
// Today it only validates the order; the backend will own the linkage
// once the traceability table lands there.
func (u *OrderUseCase) LinkWorkout(ctx context.Context, orderID, workoutID string) error {
	if strings.TrimSpace(workoutID) == "" {
		return ErrInvalidOrderInput
	}
	_, err := u.GetByID(ctx, orderID)
	return err
}

// LinkAssessment mirrors LinkWorkout for physical assessments.
func (u *OrderUseCase) LinkAssessment(ctx context.Context, orderID, assessmentID string) error {
	if strings.TrimSpace(assessmentID) == "" {
		return ErrInvalidOrderInput
	}
	_, err := u.GetByID(ctx, orderID)
	return err
}

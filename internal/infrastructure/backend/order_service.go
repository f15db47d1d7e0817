package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase"
)

// RemoteOrderService is the real-mode strategy for IOrderUseCase: every
// operation delegates to the marketplace backend's order endpoints. It is
// injected in place of the local use case at wiring time, so handlers
// carry no mock/real branching.

type RemoteOrderService struct {
	client *Client
}

var _ usecase.IOrderUseCase = (*RemoteOrderService)(nil)

func NewRemoteOrderService(client *Client) *RemoteOrderService {
	return &RemoteOrderService{client: client}
}

func (s *RemoteOrderService) CreateOrder(ctx context.Context, cmd usecase.CreateOrderCommand) (entities.ServiceOrder, error) {
	body := map[string]any{
		"user_id":        cmd.UserID,
		"user_name":      cmd.UserName,
		"user_email":     cmd.UserEmail,
		"user_phone":     cmd.UserPhone,
		"partner_id":     cmd.PartnerID,
		"partner_name":   cmd.PartnerName,
		"service_id":     cmd.ServiceID,
		"service_name":   cmd.ServiceName,
		"service_type":   cmd.ServiceType,
		"price":          cmd.Price,
		"scheduled_date": cmd.ScheduledDate,
		"scheduled_time": cmd.ScheduledTime,
		"notes":          cmd.Notes,
	}
	return s.decodeOrder(s.client.Post(ctx, "/orders", body))
}

func (s *RemoteOrderService) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return s.decodeOrder(s.client.Get(ctx, "/orders/"+url.PathEscape(id)))
}

func (s *RemoteOrderService) List(ctx context.Context, filter entities.OrderFilter) ([]entities.ServiceOrder, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.PaymentStatus != "" {
		q.Set("payment_status", string(filter.PaymentStatus))
	}
	if filter.ServiceType != "" {
		q.Set("service_type", string(filter.ServiceType))
	}
	if filter.PartnerID != "" {
		q.Set("partner_id", filter.PartnerID)
	}
	if filter.UserID != "" {
		q.Set("user_id", filter.UserID)
	}

	path := "/orders"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	env := s.client.Get(ctx, path)
	if err := env.Err(); err != nil {
		return nil, err
	}
	var orders []entities.ServiceOrder
	if err := env.Decode(&orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *RemoteOrderService) ConfirmOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return s.decodeOrder(s.client.Patch(ctx, "/orders/"+url.PathEscape(id)+"/confirm", nil))
}

func (s *RemoteOrderService) StartOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return s.decodeOrder(s.client.Patch(ctx, "/orders/"+url.PathEscape(id)+"/start", nil))
}

func (s *RemoteOrderService) CompleteOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return s.decodeOrder(s.client.Patch(ctx, "/orders/"+url.PathEscape(id)+"/complete", nil))
}

func (s *RemoteOrderService) CancelOrder(ctx context.Context, id, reason string) (entities.ServiceOrder, error) {
	body := map[string]any{"reason": reason}
	return s.decodeOrder(s.client.Patch(ctx, "/orders/"+url.PathEscape(id)+"/cancel", body))
}

func (s *RemoteOrderService) UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.ServiceOrder, error) {
	body := map[string]any{"payment_status": status}
	return s.decodeOrder(s.client.Patch(ctx, "/orders/"+url.PathEscape(id)+"/payment", body))
}

func (s *RemoteOrderService) Stats(ctx context.Context, partnerID string) (entities.OrderStats, error) {
	path := "/orders/stats"
	if partnerID != "" {
		path += "?partner_id=" + url.QueryEscape(partnerID)
	}

	env := s.client.Get(ctx, path)
	if err := env.Err(); err != nil {
		return entities.OrderStats{}, err
	}
	var stats entities.OrderStats
	if err := env.Decode(&stats); err != nil {
		return entities.OrderStats{}, err
	}
	return stats, nil
}

func (s *RemoteOrderService) LinkWorkout(ctx context.Context, orderID, workoutID string) error {
	body := map[string]any{"workout_id": workoutID}
	env := s.client.Post(ctx, "/orders/"+url.PathEscape(orderID)+"/workouts", body)
	return s.notFoundErr(env)
}

func (s *RemoteOrderService) LinkAssessment(ctx context.Context, orderID, assessmentID string) error {
	body := map[string]any{"assessment_id": assessmentID}
	env := s.client.Post(ctx, "/orders/"+url.PathEscape(orderID)+"/assessments", body)
	return s.notFoundErr(env)
}

func (s *RemoteOrderService) decodeOrder(env Envelope) (entities.ServiceOrder, error) {
	if err := s.notFoundErr(env); err != nil {
		return entities.ServiceOrder{}, err
	}
	var o entities.ServiceOrder
	if err := env.Decode(&o); err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (s *RemoteOrderService) notFoundErr(env Envelope) error {
	if env.Success {
		return nil
	}
	if env.Status == http.StatusNotFound {
		return usecase.ErrOrderNotFound
	}
	if env.Status == http.StatusConflict {
		return fmt.Errorf("%w: %s", usecase.ErrInvalidTransition, env.Error)
	}
	return env.Err()
}

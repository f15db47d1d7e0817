package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase/interfaces"
)

var (
	ErrOrderAlreadyPaid            = errors.New("order already paid")
	ErrOrderCancelledPayment       = errors.New("cannot charge a cancelled order")
	ErrInvalidPaymentPayload       = errors.New("invalid payment payload")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentNotApproved          = errors.New("payment not approved by provider")
)

// OrderPaymentResult carries the outcome of charging an order. The raw
// provider response is kept for traceability; different provider
// integrations may vary in schema.

type OrderPaymentResult struct {
	Order             entities.ServiceOrder `json:"order"`
	ProviderPaymentID string                `json:"provider_payment_id"`
	ProviderStatus    string                `json:"provider_status"`
	ProviderResponse  json.RawMessage       `json:"provider_response,omitempty"`
}

// IOrderPaymentUseCase encapsulates the "charge an order" behavior: run
// the payment through the gateway and, on approval, flip the order's
// payment axis to paid.

type IOrderPaymentUseCase interface {
	ChargeOrder(ctx context.Context, orderID string, payload json.RawMessage) (OrderPaymentResult, error)
}

type OrderPaymentUseCase struct {
	orders  IOrderUseCase
	gateway interfaces.IPaymentGateway
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(orders IOrderUseCase, gateway interfaces.IPaymentGateway) *OrderPaymentUseCase {
	return &OrderPaymentUseCase{orders: orders, gateway: gateway}
}

func (u *OrderPaymentUseCase) ChargeOrder(ctx context.Context, orderID string, payload json.RawMessage) (OrderPaymentResult, error) {
	log.Printf("[payment][usecase] charge start raw_order_id=%q payload_len=%d", orderID, len(payload))
	mockMode := isPaymentGatewayMockEnabled()

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return OrderPaymentResult{}, ErrInvalidOrderID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		if mockMode {
			payload = json.RawMessage("{}")
		} else {
			return OrderPaymentResult{}, ErrInvalidPaymentPayload
		}
	}
	if u.gateway == nil {
		return OrderPaymentResult{}, ErrPaymentGatewayNotConfigured
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return OrderPaymentResult{}, err
	}
	if o.PaymentStatus == entities.PaymentStatusPaid {
		return OrderPaymentResult{}, ErrOrderAlreadyPaid
	}
	if o.Status == entities.OrderStatusCancelled {
		return OrderPaymentResult{}, ErrOrderCancelledPayment
	}

	// The order record is the source of truth for the amount; the
	// external_reference lets the provider events reconcile back to it.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = o.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("%s (%s)", o.ServiceName, o.OrderNumber)
		}
		reqMap["transaction_amount"] = o.Price
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed order_id=%s err=%v", o.ID, err)
		return OrderPaymentResult{}, err
	}
	if providerStatus != "approved" {
		log.Printf("[payment][usecase] payment not approved order_id=%s provider_status=%s", o.ID, providerStatus)
		return OrderPaymentResult{}, fmt.Errorf("%w: %s", ErrPaymentNotApproved, providerStatus)
	}

	updated, err := u.orders.UpdatePaymentStatus(ctx, o.ID, entities.PaymentStatusPaid)
	if err != nil {
		return OrderPaymentResult{}, err
	}
	log.Printf("[payment][usecase] charge success order_id=%s number=%s provider_payment_id=%s", updated.ID, updated.OrderNumber, providerPaymentID)

	return OrderPaymentResult{
		Order:             updated,
		ProviderPaymentID: providerPaymentID,
		ProviderStatus:    providerStatus,
		ProviderResponse:  providerResp,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

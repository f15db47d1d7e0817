package response

import (
	"encoding/json"

	"fitmarket/internal/usecase"
)

type OrderPaymentResponse struct {
	Order             OrderResponse   `json:"order"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	ProviderStatus    string          `json:"provider_status"`
	ProviderResponse  json.RawMessage `json:"provider_response,omitempty"`
}

func FromOrderPayment(r usecase.OrderPaymentResult) OrderPaymentResponse {
	return OrderPaymentResponse{
		Order:             FromOrder(r.Order),
		ProviderPaymentID: r.ProviderPaymentID,
		ProviderStatus:    r.ProviderStatus,
		ProviderResponse:  r.ProviderResponse,
	}
}

package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the external payment provider used to charge
// service orders. The charge flow only inspects the provider status string
// ("approved" marks the order paid); the raw response travels back to the
// caller untouched.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}

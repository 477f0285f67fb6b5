package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external card processors (e.g. Mercado Pago).
//
// Card payments that arrive with a provider payload are processed through it
// before the receipt row is recorded; the provider response is persisted
// alongside the payment for traceability.
//
//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_mock.go -package=mock_interfaces

type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}

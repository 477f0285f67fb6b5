package request

import (
	"encoding/json"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"
)

// AddPaymentRequest records one receipt against an order.
//
// `mp_payload` is forwarded as-is to the payment gateway for card methods and
// ignored otherwise; raw JSON keeps us compatible with varying Mercado Pago
// schemas.
type AddPaymentRequest struct {
	Method     string          `json:"method" binding:"required"`
	Amount     float64         `json:"amount" binding:"required"`
	PaidAt     *time.Time      `json:"paid_at"`
	ReceivedBy string          `json:"received_by"`
	Notes      string          `json:"notes"`
	MPPayload  json.RawMessage `json:"mp_payload"`
}

func (r AddPaymentRequest) ToInput() usecase.AddPaymentInput {
	in := usecase.AddPaymentInput{
		Method:          entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.Method))),
		Amount:          r.Amount,
		ReceivedBy:      r.ReceivedBy,
		Notes:           r.Notes,
		ProviderPayload: r.MPPayload,
	}
	if r.PaidAt != nil {
		in.PaidAt = *r.PaidAt
	}
	return in
}

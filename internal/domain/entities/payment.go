package entities

import (
	"encoding/json"
	"time"
)

// PaymentEpsilon is the currency-rounding tolerance used when comparing sums of
// float64 amounts against the order total.
const PaymentEpsilon = 0.01

type PaymentMethod string

const (
	PaymentMethodDinheiro      PaymentMethod = "dinheiro"
	PaymentMethodPix           PaymentMethod = "pix"
	PaymentMethodCartaoCredito PaymentMethod = "cartao_credito"
	PaymentMethodCartaoDebito  PaymentMethod = "cartao_debito"
	PaymentMethodTransferencia PaymentMethod = "transferencia"
)

func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodDinheiro, PaymentMethodPix, PaymentMethodCartaoCredito,
		PaymentMethodCartaoDebito, PaymentMethodTransferencia:
		return true
	}
	return false
}

// IsCard reports whether the method is processed through the payment gateway
// when a provider payload accompanies the request.
func (m PaymentMethod) IsCard() bool {
	return m == PaymentMethodCartaoCredito || m == PaymentMethodCartaoDebito
}

// Payment is an immutable receipt against an order. Rows are append-only; this
// service never updates or deletes them.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original gateway response (JSON) for
//     traceability/audit when the payment went through Mercado Pago.
type Payment struct {
	ID         string        `json:"id"`
	TenantID   string        `json:"tenant_id"`
	OrderID    string        `json:"order_id"`
	Method     PaymentMethod `json:"method"`
	Amount     float64       `json:"amount"`
	PaidAt     time.Time     `json:"paid_at"`
	ReceivedBy string        `json:"received_by"`
	Notes      string        `json:"notes,omitempty"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderStatus     string          `json:"provider_status,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}

// SumPayments totals the recorded amounts.
func SumPayments(payments []Payment) float64 {
	sum := 0.0
	for _, p := range payments {
		sum += p.Amount
	}
	return sum
}

package response

import (
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"
)

type PaymentResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	Method     string    `json:"method"`
	Amount     float64   `json:"amount"`
	PaidAt     time.Time `json:"paid_at"`
	ReceivedBy string    `json:"received_by"`
	Notes      string    `json:"notes,omitempty"`

	ProviderPaymentID string `json:"provider_payment_id,omitempty"`
	ProviderStatus    string `json:"provider_status,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		OrderID:           p.OrderID,
		Method:            string(p.Method),
		Amount:            p.Amount,
		PaidAt:            p.PaidAt,
		ReceivedBy:        p.ReceivedBy,
		Notes:             p.Notes,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

type OrderBalanceResponse struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Balance float64 `json:"balance"`
}

func FromOrderBalance(b usecase.OrderBalance) OrderBalanceResponse {
	return OrderBalanceResponse{OrderID: b.OrderID, Total: b.Total, Paid: b.Paid, Balance: b.Balance}
}

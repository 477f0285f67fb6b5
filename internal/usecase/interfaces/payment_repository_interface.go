package interfaces

import (
	"context"

	"oficina_os/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Payments are append-only; there is no update or delete.
//
//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_mock.go -package=mock_interfaces

type IPaymentRepository interface {
	// CreateWithOrderVersion inserts the payment and bumps the order's version
	// in one transaction, conditioned on the version observed by the balance
	// read. Two concurrent payers cannot both pass the balance check: one of
	// them gets ErrConditionalCheckFailed.
	CreateWithOrderVersion(ctx context.Context, p entities.Payment, expectedOrderVersion int64) (entities.Payment, error)

	GetByID(ctx context.Context, tenantID, id string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, tenantID, orderID string) ([]entities.Payment, error)
}

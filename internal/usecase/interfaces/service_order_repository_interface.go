package interfaces

import (
	"context"
	"time"

	"oficina_os/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Tenant scoping: every read takes the tenant id and answers with a zero-value
// entity when the row is absent or belongs to another tenant, so callers cannot
// distinguish the two cases.
//
//go:generate mockgen -source=service_order_repository_interface.go -destination=mocks/service_order_repository_mock.go -package=mock_interfaces

type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.ServiceOrder, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.ServiceOrder, error)

	// UpdateBilling persists items/discount/subtotal/total, conditioned on the
	// version observed by the caller's read. Returns ErrConditionalCheckFailed
	// when a concurrent writer bumped the version first.
	UpdateBilling(ctx context.Context, o entities.ServiceOrder, expectedVersion int64) (entities.ServiceOrder, error)

	// TransitionStatus writes the new status conditioned on the current one
	// (compare-and-swap), stamping startedAt/completedAt when non-nil.
	// startedAt is written only if not already set. Returns
	// ErrConditionalCheckFailed when the status changed under the caller.
	TransitionStatus(ctx context.Context, tenantID, id string, from, to entities.OrderStatus, startedAt, completedAt *time.Time) (entities.ServiceOrder, error)
}

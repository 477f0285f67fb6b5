package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderInput      = errors.New("invalid order input")
	ErrInvalidOrderID         = errors.New("invalid order id")
	ErrInvalidOrderStatus     = errors.New("invalid order status")
	ErrOrderNotFound          = errors.New("order not found")
	ErrOrderNotAssigned       = errors.New("order not assigned to caller")
	ErrOrderNotOpenForChanges = errors.New("order not open for changes")
	ErrInvalidDiscount        = errors.New("invalid discount")
	ErrCompletionBlocked      = errors.New("completion blocked by final inspection")
	ErrConcurrentUpdate       = errors.New("concurrent update conflict")
)

// IllegalTransitionError reports a transition outside the table, naming the
// allowed targets so the caller can render an exact message.
type IllegalTransitionError struct {
	From    entities.OrderStatus
	Target  entities.OrderStatus
	Allowed []entities.OrderStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition %s -> %s (allowed: %v)", e.From, e.Target, e.Allowed)
}

// CreateOrderInput carries everything needed to schedule a new order.
type CreateOrderInput struct {
	CustomerID  string
	VehicleID   string
	MechanicID  string
	ScheduledAt time.Time
	Items       []entities.OrderItem
}

// IServiceOrderUseCase exposes the order lifecycle operations.
//
// UpdateStatus is the only user-initiated transition path; the payment use case
// reaches CONCLUIDO through the same internal completion function, so both
// paths apply the identical final-inspection gate.

//go:generate mockgen -source=service_order_usecase.go -destination=../adapter/http/handlers/mocks/service_order_usecase_mock.go -package=mocks
type IServiceOrderUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateOrderInput) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error)
	ListByTenant(ctx context.Context, actor entities.Actor) ([]entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, actor entities.Actor, orderID string, target entities.OrderStatus) (entities.ServiceOrder, error)
	ApplyDiscount(ctx context.Context, actor entities.Actor, orderID string, dType entities.DiscountType, value float64) (entities.ServiceOrder, error)
	AddItem(ctx context.Context, actor entities.Actor, orderID string, item entities.OrderItem) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	repo     interfaces.IServiceOrderRepository
	inspRepo interfaces.IInspectionRepository
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository, inspRepo interfaces.IInspectionRepository) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo, inspRepo: inspRepo}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, actor entities.Actor, in CreateOrderInput) (entities.ServiceOrder, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	if in.CustomerID == "" || in.VehicleID == "" || in.ScheduledAt.IsZero() {
		return entities.ServiceOrder{}, ErrInvalidOrderInput
	}
	for i := range in.Items {
		if strings.TrimSpace(in.Items[i].Description) == "" || in.Items[i].Quantity <= 0 || in.Items[i].UnitPrice < 0 {
			return entities.ServiceOrder{}, ErrInvalidOrderInput
		}
		in.Items[i].ID = uuid.NewString()
	}

	now := time.Now().UTC()
	o := entities.ServiceOrder{
		ID:          uuid.NewString(),
		TenantID:    actor.TenantID,
		Code:        newOrderCode(now),
		CustomerID:  in.CustomerID,
		VehicleID:   in.VehicleID,
		MechanicID:  strings.TrimSpace(in.MechanicID),
		Status:      entities.OrderStatusAgendado,
		ScheduledAt: in.ScheduledAt.UTC(),
		Items:       in.Items,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	o.Recalculate()

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] create failed tenant=%s err=%v", actor.TenantID, err)
		return entities.ServiceOrder{}, err
	}
	log.Printf("[order][usecase] create success order_id=%s code=%s total=%.2f", created.ID, created.Code, created.Total)
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error) {
	return loadOrder(ctx, u.repo, actor.TenantID, orderID)
}

func (u *ServiceOrderUseCase) ListByTenant(ctx context.Context, actor entities.Actor) ([]entities.ServiceOrder, error) {
	return u.repo.ListByTenant(ctx, actor.TenantID)
}

func (u *ServiceOrderUseCase) UpdateStatus(ctx context.Context, actor entities.Actor, orderID string, target entities.OrderStatus) (entities.ServiceOrder, error) {
	if !entities.IsValidOrderStatus(target) {
		return entities.ServiceOrder{}, ErrInvalidOrderStatus
	}

	o, err := loadOrder(ctx, u.repo, actor.TenantID, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := checkAssignment(actor, o); err != nil {
		return entities.ServiceOrder{}, err
	}
	if !entities.CanTransition(o.Status, target) {
		return entities.ServiceOrder{}, &IllegalTransitionError{From: o.Status, Target: target, Allowed: entities.AllowedTransitions(o.Status)}
	}

	if target == entities.OrderStatusConcluido {
		return completeOrder(ctx, u.repo, u.inspRepo, o)
	}

	now := time.Now().UTC()
	var startedAt *time.Time
	if target == entities.OrderStatusEmExecucao && o.StartedAt == nil {
		startedAt = &now
	}

	updated, err := u.repo.TransitionStatus(ctx, o.TenantID, o.ID, o.Status, target, startedAt, nil)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.ServiceOrder{}, ErrConcurrentUpdate
		}
		log.Printf("[order][usecase] transition failed order_id=%s target=%s err=%v", o.ID, target, err)
		return entities.ServiceOrder{}, err
	}
	log.Printf("[order][usecase] transition success order_id=%s %s -> %s", o.ID, o.Status, target)
	return updated, nil
}

func (u *ServiceOrderUseCase) ApplyDiscount(ctx context.Context, actor entities.Actor, orderID string, dType entities.DiscountType, value float64) (entities.ServiceOrder, error) {
	o, err := loadOrder(ctx, u.repo, actor.TenantID, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := checkAssignment(actor, o); err != nil {
		return entities.ServiceOrder{}, err
	}
	if !o.OpenForChanges() {
		return entities.ServiceOrder{}, ErrOrderNotOpenForChanges
	}

	switch dType {
	case entities.DiscountTypePercentage:
		if value < 0 || value > 100 {
			return entities.ServiceOrder{}, ErrInvalidDiscount
		}
	case entities.DiscountTypeFixed:
		if value < 0 || value > o.Subtotal {
			return entities.ServiceOrder{}, ErrInvalidDiscount
		}
	default:
		return entities.ServiceOrder{}, ErrInvalidDiscount
	}

	o.DiscountType = dType
	o.DiscountValue = value
	o.Recalculate()

	updated, err := u.repo.UpdateBilling(ctx, o, o.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.ServiceOrder{}, ErrConcurrentUpdate
		}
		return entities.ServiceOrder{}, err
	}
	log.Printf("[order][usecase] discount applied order_id=%s type=%s value=%.2f total=%.2f", o.ID, dType, value, updated.Total)
	return updated, nil
}

func (u *ServiceOrderUseCase) AddItem(ctx context.Context, actor entities.Actor, orderID string, item entities.OrderItem) (entities.ServiceOrder, error) {
	if strings.TrimSpace(item.Description) == "" || item.Quantity <= 0 || item.UnitPrice < 0 {
		return entities.ServiceOrder{}, ErrInvalidOrderInput
	}

	o, err := loadOrder(ctx, u.repo, actor.TenantID, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := checkAssignment(actor, o); err != nil {
		return entities.ServiceOrder{}, err
	}
	if !o.OpenForChanges() {
		return entities.ServiceOrder{}, ErrOrderNotOpenForChanges
	}

	item.ID = uuid.NewString()
	o.Items = append(o.Items, item)
	o.Recalculate()

	// A FIXED discount granted earlier can never exceed the (grown) subtotal,
	// so no re-validation is needed here.
	updated, err := u.repo.UpdateBilling(ctx, o, o.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.ServiceOrder{}, ErrConcurrentUpdate
		}
		return entities.ServiceOrder{}, err
	}
	log.Printf("[order][usecase] item added order_id=%s item_id=%s subtotal=%.2f total=%.2f", o.ID, item.ID, updated.Subtotal, updated.Total)
	return updated, nil
}

// completeOrder is the single completion path. Both the explicit
// UpdateStatus(CONCLUIDO) request and the paid-in-full side effect go through
// it, so the final-inspection gate cannot drift between the two.
//
// The caller has already validated that CONCLUIDO is reachable from o.Status.
func completeOrder(ctx context.Context, orders interfaces.IServiceOrderRepository, inspections interfaces.IInspectionRepository, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	insp, err := inspections.GetByID(ctx, o.TenantID, entities.InspectionID(o.ID, entities.InspectionTypeFinal))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if insp.ID == "" || insp.Status != entities.InspectionStatusConcluida {
		return entities.ServiceOrder{}, ErrCompletionBlocked
	}

	now := time.Now().UTC()
	updated, err := orders.TransitionStatus(ctx, o.TenantID, o.ID, o.Status, entities.OrderStatusConcluido, nil, &now)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.ServiceOrder{}, ErrConcurrentUpdate
		}
		return entities.ServiceOrder{}, err
	}
	log.Printf("[order][usecase] completed order_id=%s completed_at=%s", o.ID, now.Format(time.RFC3339))
	return updated, nil
}

func loadOrder(ctx context.Context, repo interfaces.IServiceOrderRepository, tenantID, orderID string) (entities.ServiceOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	o, err := repo.GetByID(ctx, tenantID, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func checkAssignment(actor entities.Actor, o entities.ServiceOrder) error {
	if actor.Restricted() && o.MechanicID != actor.UserID {
		return ErrOrderNotAssigned
	}
	return nil
}

// newOrderCode builds the human-readable order code handed to the customer,
// e.g. OS-20260901-1A2B3C4D.
func newOrderCode(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("OS-%s-%s", now.Format("20060102"), suffix)
}

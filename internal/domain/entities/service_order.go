package entities

import "time"

// OrderStatus represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - Status only ever moves along the transition table below; the two terminal
//     states (concluido/cancelado) have no outgoing edges.
//   - The CONCLUIDO edge is additionally gated on the final inspection being
//     concluida; that check lives in the use case, not here.
type OrderStatus string

const (
	OrderStatusAgendado            OrderStatus = "AGENDADO"
	OrderStatusEmVistoria          OrderStatus = "EM_VISTORIA"
	OrderStatusEmExecucao          OrderStatus = "EM_EXECUCAO"
	OrderStatusAguardandoPagamento OrderStatus = "AGUARDANDO_PAGAMENTO"
	OrderStatusConcluido           OrderStatus = "CONCLUIDO"
	OrderStatusCancelado           OrderStatus = "CANCELADO"
)

// orderTransitions is the only source of truth for legal status edges.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusAgendado:            {OrderStatusEmVistoria, OrderStatusCancelado},
	OrderStatusEmVistoria:          {OrderStatusEmExecucao, OrderStatusCancelado},
	OrderStatusEmExecucao:          {OrderStatusAguardandoPagamento, OrderStatusCancelado},
	OrderStatusAguardandoPagamento: {OrderStatusConcluido},
	OrderStatusConcluido:           {},
	OrderStatusCancelado:           {},
}

// AllowedTransitions returns the legal targets from a given status.
func AllowedTransitions(from OrderStatus) []OrderStatus {
	targets, ok := orderTransitions[from]
	if !ok {
		return nil
	}
	out := make([]OrderStatus, len(targets))
	copy(out, targets)
	return out
}

// CanTransition reports whether from -> to is a legal edge.
func CanTransition(from, to OrderStatus) bool {
	for _, t := range orderTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status has no outgoing edges.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// IsValidOrderStatus reports whether s names a known status.
func IsValidOrderStatus(s OrderStatus) bool {
	_, ok := orderTransitions[s]
	return ok
}

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "PERCENTAGE"
	DiscountTypeFixed      DiscountType = "FIXED"
)

// OrderItem is a billed line of the order (serviço ou peça).
type OrderItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// ServiceOrder is a unit of work against one vehicle visit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id
//
// Monetary representation:
//   - Subtotal/Total are derived from Items and the discount; use Recalculate
//     after mutating either.
//
// Version is the optimistic-lock counter: every payment insert and status write
// bumps it, so stale read-validate-write sequences fail their condition check.
type ServiceOrder struct {
	ID            string       `json:"id"`
	TenantID      string       `json:"tenant_id"`
	Code          string       `json:"code"`
	CustomerID    string       `json:"customer_id"`
	VehicleID     string       `json:"vehicle_id"`
	MechanicID    string       `json:"mechanic_id,omitempty"`
	Status        OrderStatus  `json:"status"`
	ScheduledAt   time.Time    `json:"scheduled_at"`
	StartedAt     *time.Time   `json:"started_at,omitempty"`
	CompletedAt   *time.Time   `json:"completed_at,omitempty"`
	Items         []OrderItem  `json:"items"`
	Subtotal      float64      `json:"subtotal"`
	DiscountType  DiscountType `json:"discount_type,omitempty"`
	DiscountValue float64      `json:"discount_value,omitempty"`
	Total         float64      `json:"total"`
	Version       int64        `json:"version"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Recalculate recomputes Subtotal and Total from Items and the discount.
// Total never goes below zero.
func (o *ServiceOrder) Recalculate() {
	subtotal := 0.0
	for _, it := range o.Items {
		if it.Quantity > 0 && it.UnitPrice > 0 {
			subtotal += float64(it.Quantity) * it.UnitPrice
		}
	}
	o.Subtotal = subtotal

	discount := 0.0
	switch o.DiscountType {
	case DiscountTypePercentage:
		discount = subtotal * o.DiscountValue / 100
	case DiscountTypeFixed:
		discount = o.DiscountValue
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}
	o.Total = total
}

// OpenForChanges reports whether items and discount may still be mutated.
// Once the order is awaiting payment the total is frozen.
func (o *ServiceOrder) OpenForChanges() bool {
	switch o.Status {
	case OrderStatusAgendado, OrderStatusEmVistoria, OrderStatusEmExecucao:
		return true
	}
	return false
}

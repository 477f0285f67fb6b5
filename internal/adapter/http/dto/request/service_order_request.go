package request

import (
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"
)

type OrderItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
}

// CreateOrderRequest is the payload for scheduling a new service order.
type CreateOrderRequest struct {
	CustomerID  string             `json:"customer_id" binding:"required"`
	VehicleID   string             `json:"vehicle_id" binding:"required"`
	MechanicID  string             `json:"mechanic_id"`
	ScheduledAt time.Time          `json:"scheduled_at" binding:"required"`
	Items       []OrderItemRequest `json:"items"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return usecase.CreateOrderInput{
		CustomerID:  r.CustomerID,
		VehicleID:   r.VehicleID,
		MechanicID:  r.MechanicID,
		ScheduledAt: r.ScheduledAt,
		Items:       items,
	}
}

// UpdateOrderStatusRequest asks for one transition of the order state machine.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateOrderStatusRequest) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

// ApplyDiscountRequest sets or replaces the order-level discount.
type ApplyDiscountRequest struct {
	Type  string  `json:"type" binding:"required"`
	Value float64 `json:"value"`
}

func (r ApplyDiscountRequest) ResolveType() entities.DiscountType {
	return entities.DiscountType(strings.ToUpper(strings.TrimSpace(r.Type)))
}

// AddOrderItemRequest appends one billed line to the order.
type AddOrderItemRequest struct {
	OrderItemRequest
}

func (r AddOrderItemRequest) ToItem() entities.OrderItem {
	return entities.OrderItem{
		Description: strings.TrimSpace(r.Description),
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
	}
}

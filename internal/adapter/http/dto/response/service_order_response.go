package response

import (
	"time"

	"oficina_os/internal/domain/entities"
)

type OrderItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type ServiceOrderResponse struct {
	ID            string              `json:"id"`
	Code          string              `json:"code"`
	CustomerID    string              `json:"customer_id"`
	VehicleID     string              `json:"vehicle_id"`
	MechanicID    string              `json:"mechanic_id,omitempty"`
	Status        string              `json:"status"`
	ScheduledAt   time.Time           `json:"scheduled_at"`
	StartedAt     *time.Time          `json:"started_at,omitempty"`
	CompletedAt   *time.Time          `json:"completed_at,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      float64             `json:"subtotal"`
	DiscountType  string              `json:"discount_type,omitempty"`
	DiscountValue float64             `json:"discount_value,omitempty"`
	Total         float64             `json:"total"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return ServiceOrderResponse{
		ID:            o.ID,
		Code:          o.Code,
		CustomerID:    o.CustomerID,
		VehicleID:     o.VehicleID,
		MechanicID:    o.MechanicID,
		Status:        string(o.Status),
		ScheduledAt:   o.ScheduledAt,
		StartedAt:     o.StartedAt,
		CompletedAt:   o.CompletedAt,
		Items:         items,
		Subtotal:      o.Subtotal,
		DiscountType:  string(o.DiscountType),
		DiscountValue: o.DiscountValue,
		Total:         o.Total,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

package request

import (
	"testing"
	"time"

	"oficina_os/internal/domain/entities"
)

func TestUpdateOrderStatusRequest_ResolveStatus(t *testing.T) {
	r := UpdateOrderStatusRequest{Status: "  em_vistoria "}
	if got := r.ResolveStatus(); got != entities.OrderStatusEmVistoria {
		t.Fatalf("expected EM_VISTORIA, got %q", got)
	}

	r2 := UpdateOrderStatusRequest{Status: "Concluido"}
	if got := r2.ResolveStatus(); got != entities.OrderStatusConcluido {
		t.Fatalf("expected CONCLUIDO, got %q", got)
	}
}

func TestApplyDiscountRequest_ResolveType(t *testing.T) {
	r := ApplyDiscountRequest{Type: "percentage", Value: 10}
	if got := r.ResolveType(); got != entities.DiscountTypePercentage {
		t.Fatalf("expected PERCENTAGE, got %q", got)
	}
	r2 := ApplyDiscountRequest{Type: " fixed "}
	if got := r2.ResolveType(); got != entities.DiscountTypeFixed {
		t.Fatalf("expected FIXED, got %q", got)
	}
}

func TestCreateOrderRequest_ToInput(t *testing.T) {
	scheduled := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	r := CreateOrderRequest{
		CustomerID:  "c-1",
		VehicleID:   "v-1",
		MechanicID:  "mec-1",
		ScheduledAt: scheduled,
		Items: []OrderItemRequest{
			{Description: " troca de oleo ", Quantity: 2, UnitPrice: 100},
		},
	}

	in := r.ToInput()
	if in.CustomerID != "c-1" || in.VehicleID != "v-1" || !in.ScheduledAt.Equal(scheduled) {
		t.Fatalf("unexpected input: %+v", in)
	}
	if len(in.Items) != 1 || in.Items[0].Description != "troca de oleo" || in.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", in.Items)
	}
}

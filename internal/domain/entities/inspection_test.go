package entities

import (
	"testing"
	"time"
)

func TestInspectionID(t *testing.T) {
	if got := InspectionID("os-1", InspectionTypeFinal); got != "os-1#final" {
		t.Fatalf("unexpected id: %s", got)
	}
}

func TestInspection_PendingRequired(t *testing.T) {
	insp := Inspection{Items: []InspectionItem{
		{ItemKey: "a", IsRequired: true, Status: ItemStatusPendente},
		{ItemKey: "b", IsRequired: true, Status: ItemStatusOK},
		{ItemKey: "c", IsRequired: false, Status: ItemStatusPendente},
		{ItemKey: "d", IsRequired: true, Status: ItemStatusComAvaria},
	}}

	pending := insp.PendingRequired()
	if len(pending) != 1 || pending[0].ItemKey != "a" {
		t.Fatalf("unexpected pending items: %+v", pending)
	}
}

func TestInspection_Progress(t *testing.T) {
	t.Run("half done", func(t *testing.T) {
		insp := Inspection{Items: []InspectionItem{
			{IsRequired: true, Status: ItemStatusOK},
			{IsRequired: true, Status: ItemStatusPendente},
			{IsRequired: false, Status: ItemStatusPendente},
		}}
		if got := insp.Progress(); got != 50 {
			t.Fatalf("expected 50, got %.2f", got)
		}
	})

	t.Run("no required items counts as complete", func(t *testing.T) {
		insp := Inspection{Items: []InspectionItem{{IsRequired: false, Status: ItemStatusPendente}}}
		if got := insp.Progress(); got != 100 {
			t.Fatalf("expected 100, got %.2f", got)
		}
	})
}

func TestInspectionItem_ApplyStatus(t *testing.T) {
	now := time.Now().UTC()

	t.Run("com_avaria keeps damage fields", func(t *testing.T) {
		it := InspectionItem{Status: ItemStatusPendente}
		it.ApplyStatus(ItemStatusComAvaria, "arranhao", "leve", now)
		if it.DamageType != "arranhao" || it.Severity != "leve" {
			t.Fatalf("expected damage fields to be kept: %+v", it)
		}
		if it.CompletedAt == nil || !it.CompletedAt.Equal(now) {
			t.Fatalf("expected completed_at to be set")
		}
	})

	t.Run("ok clears damage fields", func(t *testing.T) {
		it := InspectionItem{Status: ItemStatusComAvaria, DamageType: "arranhao", Severity: "leve"}
		it.ApplyStatus(ItemStatusOK, "ignored", "ignored", now)
		if it.DamageType != "" || it.Severity != "" {
			t.Fatalf("expected damage fields cleared: %+v", it)
		}
		if it.CompletedAt == nil {
			t.Fatalf("expected completed_at to be set")
		}
	})

	t.Run("back to pendente clears completed_at", func(t *testing.T) {
		it := InspectionItem{}
		it.ApplyStatus(ItemStatusOK, "", "", now)
		it.ApplyStatus(ItemStatusPendente, "", "", now)
		if it.CompletedAt != nil {
			t.Fatalf("expected completed_at nil for pendente")
		}
	})
}

func TestSumPayments(t *testing.T) {
	payments := []Payment{{Amount: 100.50}, {Amount: 49.50}, {Amount: 0.01}}
	if got := SumPayments(payments); got != 150.01 {
		t.Fatalf("expected 150.01, got %.2f", got)
	}
	if got := SumPayments(nil); got != 0 {
		t.Fatalf("expected 0 for empty, got %.2f", got)
	}
}

func TestPaymentMethod(t *testing.T) {
	if !IsValidPaymentMethod(PaymentMethodPix) || IsValidPaymentMethod("boleto") {
		t.Fatalf("unexpected method validation")
	}
	if !PaymentMethodCartaoCredito.IsCard() || !PaymentMethodCartaoDebito.IsCard() {
		t.Fatalf("expected card methods to report IsCard")
	}
	if PaymentMethodDinheiro.IsCard() || PaymentMethodPix.IsCard() {
		t.Fatalf("expected non-card methods to report !IsCard")
	}
}

func TestActor_Restricted(t *testing.T) {
	if (Actor{Role: RoleAdmin}).Restricted() || (Actor{Role: RoleAtendente}).Restricted() {
		t.Fatalf("admin/atendente must not be restricted")
	}
	if !(Actor{Role: RoleMecanico}).Restricted() {
		t.Fatalf("mecanico must be restricted")
	}
}

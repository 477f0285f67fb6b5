package request

import (
	"testing"

	"oficina_os/internal/domain/entities"
)

func TestCreateInspectionRequest_ResolveType(t *testing.T) {
	r := CreateInspectionRequest{Type: " Final "}
	if got := r.ResolveType(); got != entities.InspectionTypeFinal {
		t.Fatalf("expected final, got %q", got)
	}
	r2 := CreateInspectionRequest{Type: "ENTRADA"}
	if got := r2.ResolveType(); got != entities.InspectionTypeEntrada {
		t.Fatalf("expected entrada, got %q", got)
	}
}

func TestUpdateInspectionItemRequest_ToInput(t *testing.T) {
	r := UpdateInspectionItemRequest{Status: " COM_AVARIA ", DamageType: "risco", Severity: "leve", Notes: "porta"}
	in := r.ToInput()
	if in.Status != entities.ItemStatusComAvaria {
		t.Fatalf("expected com_avaria, got %q", in.Status)
	}
	if in.DamageType != "risco" || in.Severity != "leve" || in.Notes != "porta" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestAddDamagesRequest_ToInputs(t *testing.T) {
	r := AddDamagesRequest{Damages: []DamageRequest{
		{
			ClientRef:  "draft-a",
			Zone:       "capo",
			Position:   &Vec3Request{X: 0.1, Y: 0.2, Z: 0.3},
			Normal:     &Vec3Request{X: 0, Y: 1, Z: 0},
			DamageType: "amassado",
			Severity:   "media",
		},
		{
			CustomPosition: "teto solar",
			DamageType:     "trinca",
			Severity:       "grave",
		},
	}}

	inputs := r.ToInputs()
	if len(inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(inputs))
	}
	if inputs[0].ClientRef != "draft-a" || inputs[0].Zone != "capo" {
		t.Fatalf("unexpected input: %+v", inputs[0])
	}
	if inputs[0].Position == nil || inputs[0].Position.Y != 0.2 {
		t.Fatalf("position not mapped: %+v", inputs[0].Position)
	}
	if inputs[0].Normal == nil || inputs[0].Normal.Y != 1 {
		t.Fatalf("normal not mapped: %+v", inputs[0].Normal)
	}
	if inputs[1].Position != nil || inputs[1].ClientRef != "" {
		t.Fatalf("unexpected input: %+v", inputs[1])
	}
}

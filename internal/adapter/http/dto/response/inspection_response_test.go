package response

import (
	"testing"
	"time"

	"oficina_os/internal/domain/entities"
)

func TestFromInspection(t *testing.T) {
	now := time.Now().UTC()
	insp := entities.Inspection{
		ID:      "os-1#entrada",
		OrderID: "os-1",
		Type:    entities.InspectionTypeEntrada,
		Status:  entities.InspectionStatusEmAndamento,
		Items: []entities.InspectionItem{
			{ItemKey: "freios", IsRequired: true, Status: entities.ItemStatusOK, CompletedAt: &now},
			{ItemKey: "pneus", IsRequired: true, Status: entities.ItemStatusPendente},
		},
		Damages: []entities.InspectionDamage{
			{
				ID:        "dmg-1",
				ClientRef: "draft-a",
				Zone:      "capo",
				Position:  &entities.Vec3{X: 0.1, Y: 0.2, Z: 0.3},
				Severity:  "leve",
			},
		},
	}

	resp := FromInspection(insp)
	if resp.ID != "os-1#entrada" || resp.Type != "entrada" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Progress != 50 {
		t.Fatalf("expected progress 50, got %v", resp.Progress)
	}
	if len(resp.Items) != 2 || resp.Items[0].CompletedAt == nil {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
	if len(resp.Damages) != 1 {
		t.Fatalf("unexpected damages: %+v", resp.Damages)
	}
	d := resp.Damages[0]
	if d.ClientRef != "draft-a" || d.Position == nil || d.Position.Z != 0.3 || d.Normal != nil {
		t.Fatalf("unexpected damage: %+v", d)
	}
}

func TestFromInspectionDamages_PreservesOrder(t *testing.T) {
	rows := []entities.InspectionDamage{
		{ID: "dmg-2", ClientRef: "draft-b"},
		{ID: "dmg-1", ClientRef: "draft-a"},
	}
	out := FromInspectionDamages(rows)
	if len(out) != 2 || out[0].ID != "dmg-2" || out[1].ClientRef != "draft-a" {
		t.Fatalf("unexpected output: %+v", out)
	}
}

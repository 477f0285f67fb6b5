package entities

import "time"

type ItemStatus string

const (
	ItemStatusPendente  ItemStatus = "pendente"
	ItemStatusOK        ItemStatus = "ok"
	ItemStatusComAvaria ItemStatus = "com_avaria"
)

func IsValidItemStatus(s ItemStatus) bool {
	switch s {
	case ItemStatusPendente, ItemStatusOK, ItemStatusComAvaria:
		return true
	}
	return false
}

// InspectionItem is one checklist row, materialized from the template when the
// inspection is created (and re-synced append-only on template drift).
//
// Storage model (DynamoDB):
//   - PK: inspection_id (HASH) + item_key (RANGE)
//
// Invariants:
//   - DamageType/Severity are set only while Status is com_avaria.
//   - CompletedAt is set iff Status != pendente.
type InspectionItem struct {
	InspectionID string     `json:"inspection_id"`
	ItemKey      string     `json:"item_key"`
	Category     string     `json:"category"`
	Label        string     `json:"label"`
	IsRequired   bool       `json:"is_required"`
	IsCritical   bool       `json:"is_critical"`
	Status       ItemStatus `json:"status"`
	PhotoURL     string     `json:"photo_url,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	DamageType   string     `json:"damage_type,omitempty"`
	Severity     string     `json:"severity,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ApplyStatus sets the item status and keeps the dependent fields consistent:
// damage metadata only survives com_avaria, and CompletedAt tracks pendente-ness.
func (it *InspectionItem) ApplyStatus(status ItemStatus, damageType, severity string, now time.Time) {
	it.Status = status
	if status == ItemStatusComAvaria {
		it.DamageType = damageType
		it.Severity = severity
	} else {
		it.DamageType = ""
		it.Severity = ""
	}
	if status == ItemStatusPendente {
		it.CompletedAt = nil
	} else {
		t := now
		it.CompletedAt = &t
	}
	it.UpdatedAt = now
}

package entities

import "time"

// InspectionType identifies which vistoria of the order this is.
// At most one inspection of each type exists per order.

type InspectionType string

const (
	InspectionTypeEntrada       InspectionType = "entrada"
	InspectionTypeIntermediaria InspectionType = "intermediaria"
	InspectionTypeFinal         InspectionType = "final"
)

func IsValidInspectionType(t InspectionType) bool {
	switch t {
	case InspectionTypeEntrada, InspectionTypeIntermediaria, InspectionTypeFinal:
		return true
	}
	return false
}

type InspectionStatus string

const (
	InspectionStatusEmAndamento InspectionStatus = "em_andamento"
	InspectionStatusConcluida   InspectionStatus = "concluida"
)

// Inspection is one vistoria of a given type for an order.
//
// Storage model (DynamoDB):
//   - PK: id = "<order_id>#<type>"
//
// The deterministic PK guarantees one inspection per (order, type); creating a
// duplicate fails the attribute_not_exists condition and surfaces as a conflict.
//
// Once Status flips to concluida the inspection is an immutable snapshot: item
// writes are rejected and the flip is never reverted. Version is bumped by every
// successful item write so the completion check cannot commit over a stale read.
type Inspection struct {
	ID            string           `json:"id"`
	TenantID      string           `json:"tenant_id"`
	OrderID       string           `json:"order_id"`
	Type          InspectionType   `json:"type"`
	Status        InspectionStatus `json:"status"`
	SignedAt      *time.Time       `json:"signed_at,omitempty"`
	FinalVideoURL string           `json:"final_video_url,omitempty"`
	Version       int64            `json:"version"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`

	Items   []InspectionItem   `json:"items,omitempty"`
	Damages []InspectionDamage `json:"damages,omitempty"`
}

// InspectionID builds the deterministic inspection PK for an order and type.
func InspectionID(orderID string, t InspectionType) string {
	return orderID + "#" + string(t)
}

// PendingRequired returns the required items still pendente.
func (i *Inspection) PendingRequired() []InspectionItem {
	var pending []InspectionItem
	for _, it := range i.Items {
		if it.IsRequired && it.Status == ItemStatusPendente {
			pending = append(pending, it)
		}
	}
	return pending
}

// Progress is completedRequired/totalRequired as a percentage. Display only.
func (i *Inspection) Progress() float64 {
	total := 0
	done := 0
	for _, it := range i.Items {
		if !it.IsRequired {
			continue
		}
		total++
		if it.Status != ItemStatusPendente {
			done++
		}
	}
	if total == 0 {
		return 100
	}
	return float64(done) / float64(total) * 100
}

package entities

import "time"

// Vec3 is a 3D coordinate or surface-normal vector used by marker-based damage
// capture on the vehicle model.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// InspectionDamage is a free-standing damage annotation, not tied to a
// checklist row. Position is either a recognized vehicle-surface zone or a
// free-text CustomPosition, optionally with a 3D coordinate and normal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (inspection_id-index): inspection_id
//
// Rows are immutable once created; the only mutations are batch create and
// delete. Drafts live client-side (see client/damagedraft) and only become rows
// after a successful batch save.
type InspectionDamage struct {
	ID string `json:"id"`
	// ClientRef is the caller-generated correlation id for batch creates. It is
	// echoed back on the created row and never stored.
	ClientRef      string    `json:"client_ref,omitempty"`
	TenantID       string    `json:"tenant_id"`
	InspectionID   string    `json:"inspection_id"`
	Zone           string    `json:"zone,omitempty"`
	CustomPosition string    `json:"custom_position,omitempty"`
	Position       *Vec3     `json:"position,omitempty"`
	Normal         *Vec3     `json:"normal,omitempty"`
	DamageType     string    `json:"damage_type"`
	Severity       string    `json:"severity"`
	Notes          string    `json:"notes,omitempty"`
	PhotoURL       string    `json:"photo_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

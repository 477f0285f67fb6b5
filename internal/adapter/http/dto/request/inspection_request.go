package request

import (
	"strings"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"
)

// CreateInspectionRequest opens one vistoria of the given type for an order.
type CreateInspectionRequest struct {
	Type string `json:"type" binding:"required"`
}

func (r CreateInspectionRequest) ResolveType() entities.InspectionType {
	return entities.InspectionType(strings.ToLower(strings.TrimSpace(r.Type)))
}

// UpdateInspectionItemRequest mutates one checklist row.
type UpdateInspectionItemRequest struct {
	Status     string `json:"status" binding:"required"`
	PhotoURL   string `json:"photo_url"`
	Notes      string `json:"notes"`
	DamageType string `json:"damage_type"`
	Severity   string `json:"severity"`
}

func (r UpdateInspectionItemRequest) ToInput() usecase.UpdateItemInput {
	return usecase.UpdateItemInput{
		Status:     entities.ItemStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		PhotoURL:   r.PhotoURL,
		Notes:      r.Notes,
		DamageType: r.DamageType,
		Severity:   r.Severity,
	}
}

// SetFinalVideoRequest stores the final walkaround video URL.
type SetFinalVideoRequest struct {
	URL string `json:"url" binding:"required"`
}

type Vec3Request struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// DamageRequest is one damage annotation of a batch-create call. Either a
// recognized `zone` or a free-text `custom_position` must describe where the
// damage sits.
type DamageRequest struct {
	ClientRef      string       `json:"client_ref"`
	Zone           string       `json:"zone"`
	CustomPosition string       `json:"custom_position"`
	Position       *Vec3Request `json:"position"`
	Normal         *Vec3Request `json:"normal"`
	DamageType     string       `json:"damage_type" binding:"required"`
	Severity       string       `json:"severity" binding:"required"`
	Notes          string       `json:"notes"`
	PhotoURL       string       `json:"photo_url"`
}

// AddDamagesRequest is the batch payload; the response echoes created rows in
// this exact order, each carrying back its client_ref, so clients can
// correlate server-assigned ids without relying on position alone.
type AddDamagesRequest struct {
	Damages []DamageRequest `json:"damages" binding:"required"`
}

func (r AddDamagesRequest) ToInputs() []usecase.DamageInput {
	inputs := make([]usecase.DamageInput, 0, len(r.Damages))
	for _, d := range r.Damages {
		in := usecase.DamageInput{
			ClientRef:      d.ClientRef,
			Zone:           d.Zone,
			CustomPosition: d.CustomPosition,
			DamageType:     d.DamageType,
			Severity:       d.Severity,
			Notes:          d.Notes,
			PhotoURL:       d.PhotoURL,
		}
		if d.Position != nil {
			in.Position = &entities.Vec3{X: d.Position.X, Y: d.Position.Y, Z: d.Position.Z}
		}
		if d.Normal != nil {
			in.Normal = &entities.Vec3{X: d.Normal.X, Y: d.Normal.Y, Z: d.Normal.Z}
		}
		inputs = append(inputs, in)
	}
	return inputs
}

package response

import (
	"time"

	"oficina_os/internal/domain/entities"
)

type InspectionItemResponse struct {
	ItemKey     string     `json:"item_key"`
	Category    string     `json:"category"`
	Label       string     `json:"label"`
	IsRequired  bool       `json:"is_required"`
	IsCritical  bool       `json:"is_critical"`
	Status      string     `json:"status"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	DamageType  string     `json:"damage_type,omitempty"`
	Severity    string     `json:"severity,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type Vec3Response struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type InspectionDamageResponse struct {
	ID             string        `json:"id"`
	ClientRef      string        `json:"client_ref,omitempty"`
	InspectionID   string        `json:"inspection_id"`
	Zone           string        `json:"zone,omitempty"`
	CustomPosition string        `json:"custom_position,omitempty"`
	Position       *Vec3Response `json:"position,omitempty"`
	Normal         *Vec3Response `json:"normal,omitempty"`
	DamageType     string        `json:"damage_type"`
	Severity       string        `json:"severity"`
	Notes          string        `json:"notes,omitempty"`
	PhotoURL       string        `json:"photo_url,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

type InspectionResponse struct {
	ID            string                     `json:"id"`
	OrderID       string                     `json:"order_id"`
	Type          string                     `json:"type"`
	Status        string                     `json:"status"`
	SignedAt      *time.Time                 `json:"signed_at,omitempty"`
	FinalVideoURL string                     `json:"final_video_url,omitempty"`
	Progress      float64                    `json:"progress"`
	Items         []InspectionItemResponse   `json:"items,omitempty"`
	Damages       []InspectionDamageResponse `json:"damages,omitempty"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

func FromInspection(i entities.Inspection) InspectionResponse {
	items := make([]InspectionItemResponse, 0, len(i.Items))
	for _, it := range i.Items {
		items = append(items, FromInspectionItem(it))
	}
	damages := make([]InspectionDamageResponse, 0, len(i.Damages))
	for _, d := range i.Damages {
		damages = append(damages, FromInspectionDamage(d))
	}
	return InspectionResponse{
		ID:            i.ID,
		OrderID:       i.OrderID,
		Type:          string(i.Type),
		Status:        string(i.Status),
		SignedAt:      i.SignedAt,
		FinalVideoURL: i.FinalVideoURL,
		Progress:      i.Progress(),
		Items:         items,
		Damages:       damages,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func FromInspectionItem(it entities.InspectionItem) InspectionItemResponse {
	return InspectionItemResponse{
		ItemKey:     it.ItemKey,
		Category:    it.Category,
		Label:       it.Label,
		IsRequired:  it.IsRequired,
		IsCritical:  it.IsCritical,
		Status:      string(it.Status),
		PhotoURL:    it.PhotoURL,
		Notes:       it.Notes,
		DamageType:  it.DamageType,
		Severity:    it.Severity,
		CompletedAt: it.CompletedAt,
	}
}

func FromInspectionDamage(d entities.InspectionDamage) InspectionDamageResponse {
	resp := InspectionDamageResponse{
		ID:             d.ID,
		ClientRef:      d.ClientRef,
		InspectionID:   d.InspectionID,
		Zone:           d.Zone,
		CustomPosition: d.CustomPosition,
		DamageType:     d.DamageType,
		Severity:       d.Severity,
		Notes:          d.Notes,
		PhotoURL:       d.PhotoURL,
		CreatedAt:      d.CreatedAt,
	}
	if d.Position != nil {
		resp.Position = &Vec3Response{X: d.Position.X, Y: d.Position.Y, Z: d.Position.Z}
	}
	if d.Normal != nil {
		resp.Normal = &Vec3Response{X: d.Normal.X, Y: d.Normal.Y, Z: d.Normal.Z}
	}
	return resp
}

func FromInspectionDamages(damages []entities.InspectionDamage) []InspectionDamageResponse {
	out := make([]InspectionDamageResponse, 0, len(damages))
	for _, d := range damages {
		out = append(out, FromInspectionDamage(d))
	}
	return out
}

package entities

// ChecklistTemplateItem is one entry of the external checklist template the
// engine consumes. The template is static from this service's point of view;
// inspections materialize it once and only ever gain items on drift, never
// lose them.
type ChecklistTemplateItem struct {
	Category   string `json:"category"`
	ItemKey    string `json:"item_key"`
	Label      string `json:"label"`
	IsRequired bool   `json:"is_required"`
	IsCritical bool   `json:"is_critical"`
}

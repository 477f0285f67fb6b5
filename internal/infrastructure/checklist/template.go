package checklist

import (
	"context"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

// StaticTemplateProvider serves the built-in vehicle checklist template. The
// template is external input from the engine's point of view: inspections
// materialize it once and follow-up drift syncs only ever add keys.
//
// Swapping in a tenant-configurable provider later only requires another
// IChecklistTemplateProvider implementation.
type StaticTemplateProvider struct{}

var _ interfaces.IChecklistTemplateProvider = (*StaticTemplateProvider)(nil)

func NewStaticTemplateProvider() *StaticTemplateProvider {
	return &StaticTemplateProvider{}
}

func (p *StaticTemplateProvider) Items(_ context.Context) ([]entities.ChecklistTemplateItem, error) {
	out := make([]entities.ChecklistTemplateItem, len(defaultTemplate))
	copy(out, defaultTemplate)
	return out, nil
}

var defaultTemplate = []entities.ChecklistTemplateItem{
	{Category: "exterior", ItemKey: "lataria", Label: "Lataria e pintura", IsRequired: true, IsCritical: false},
	{Category: "exterior", ItemKey: "parabrisa", Label: "Para-brisa e vidros", IsRequired: true, IsCritical: true},
	{Category: "exterior", ItemKey: "retrovisores", Label: "Retrovisores", IsRequired: true, IsCritical: false},
	{Category: "exterior", ItemKey: "farois", Label: "Faróis e lanternas", IsRequired: true, IsCritical: true},
	{Category: "exterior", ItemKey: "pneus", Label: "Pneus e rodas", IsRequired: true, IsCritical: true},
	{Category: "exterior", ItemKey: "estepe", Label: "Estepe", IsRequired: false, IsCritical: false},
	{Category: "interior", ItemKey: "bancos", Label: "Bancos e estofamento", IsRequired: true, IsCritical: false},
	{Category: "interior", ItemKey: "painel", Label: "Painel de instrumentos", IsRequired: true, IsCritical: true},
	{Category: "interior", ItemKey: "cintos", Label: "Cintos de segurança", IsRequired: true, IsCritical: true},
	{Category: "interior", ItemKey: "ar_condicionado", Label: "Ar-condicionado", IsRequired: false, IsCritical: false},
	{Category: "mecanica", ItemKey: "nivel_oleo", Label: "Nível de óleo", IsRequired: true, IsCritical: true},
	{Category: "mecanica", ItemKey: "fluido_freio", Label: "Fluido de freio", IsRequired: true, IsCritical: true},
	{Category: "mecanica", ItemKey: "bateria", Label: "Bateria", IsRequired: true, IsCritical: false},
	{Category: "mecanica", ItemKey: "suspensao", Label: "Suspensão", IsRequired: false, IsCritical: false},
	{Category: "documentos", ItemKey: "km_atual", Label: "Quilometragem registrada", IsRequired: true, IsCritical: false},
	{Category: "documentos", ItemKey: "nivel_combustivel", Label: "Nível de combustível", IsRequired: true, IsCritical: false},
}

package interfaces

import (
	"context"

	"oficina_os/internal/domain/entities"
)

// IChecklistTemplateProvider supplies the external checklist template used to
// materialize a new inspection and to detect template drift. The engine treats
// the template as immutable input; it never writes back to it.
//
//go:generate mockgen -source=checklist_template_interface.go -destination=mocks/checklist_template_mock.go -package=mock_interfaces

type IChecklistTemplateProvider interface {
	Items(ctx context.Context) ([]entities.ChecklistTemplateItem, error)
}

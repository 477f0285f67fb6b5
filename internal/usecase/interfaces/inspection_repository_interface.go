package interfaces

import (
	"context"
	"time"

	"oficina_os/internal/domain/entities"
)

// IInspectionRepository abstracts DynamoDB persistence for inspections, their
// checklist items and their damage annotations.
//
// The inspection row carries a version counter; item writes bump it inside the
// same transaction so the completion check can detect concurrent item updates.
//
//go:generate mockgen -source=inspection_repository_interface.go -destination=mocks/inspection_repository_mock.go -package=mock_interfaces

type IInspectionRepository interface {
	// Create inserts the inspection and its materialized items. Returns
	// ErrAlreadyExists when an inspection with the same id (order+type) exists.
	Create(ctx context.Context, insp entities.Inspection, items []entities.InspectionItem) (entities.Inspection, error)

	GetByID(ctx context.Context, tenantID, id string) (entities.Inspection, error)
	ListItems(ctx context.Context, inspectionID string) ([]entities.InspectionItem, error)
	ListDamages(ctx context.Context, tenantID, inspectionID string) ([]entities.InspectionDamage, error)

	// InsertMissingItems adds template-drift rows, skipping keys that already
	// exist. Existing rows are never touched.
	InsertMissingItems(ctx context.Context, items []entities.InspectionItem) error

	// UpdateItemGuarded writes the item and bumps the inspection version in one
	// transaction, conditioned on the inspection still being em_andamento.
	// Returns ErrConditionalCheckFailed when the guard fails.
	UpdateItemGuarded(ctx context.Context, tenantID string, item entities.InspectionItem) (entities.InspectionItem, error)

	// Complete flips the inspection to concluida, conditioned on em_andamento
	// and on the version observed by the caller's completeness read.
	Complete(ctx context.Context, tenantID, inspectionID string, expectedVersion int64, signedAt time.Time) (entities.Inspection, error)

	// SetFinalVideo stores the final walkaround video URL while em_andamento.
	SetFinalVideo(ctx context.Context, tenantID, inspectionID, url string) (entities.Inspection, error)

	// CreateDamages inserts the batch atomically; the returned slice preserves
	// the submission order so clients can correlate server-assigned ids.
	CreateDamages(ctx context.Context, damages []entities.InspectionDamage) ([]entities.InspectionDamage, error)

	// DeleteDamage removes one damage row. The boolean reports whether a row
	// was actually deleted.
	DeleteDamage(ctx context.Context, tenantID, inspectionID, damageID string) (bool, error)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidInspectionInput   = errors.New("invalid inspection input")
	ErrInvalidInspectionType    = errors.New("invalid inspection type")
	ErrInspectionNotFound       = errors.New("inspection not found")
	ErrInspectionAlreadyExists  = errors.New("inspection already exists for this type")
	ErrInspectionLocked         = errors.New("inspection already concluded")
	ErrInspectionItemNotFound   = errors.New("inspection item not found")
	ErrInvalidItemStatus        = errors.New("invalid item status")
	ErrInvalidDamageInput       = errors.New("invalid damage input")
	ErrInspectionDamageNotFound = errors.New("inspection damage not found")
)

// IncompleteInspectionError reports how many required items are still pendente
// when a completion is requested too early.
type IncompleteInspectionError struct {
	MissingCount int
}

func (e *IncompleteInspectionError) Error() string {
	return fmt.Sprintf("inspection incomplete: %d required item(s) still pending", e.MissingCount)
}

// UpdateItemInput carries the mutable fields of one checklist row.
type UpdateItemInput struct {
	Status     entities.ItemStatus
	PhotoURL   string
	Notes      string
	DamageType string
	Severity   string
}

// DamageInput is one damage annotation of a batch-create request, in the
// client's submission order.
type DamageInput struct {
	ClientRef      string
	Zone           string
	CustomPosition string
	Position       *entities.Vec3
	Normal         *entities.Vec3
	DamageType     string
	Severity       string
	Notes          string
	PhotoURL       string
}

// IInspectionUseCase owns the checklist/vistoria workflow: per-item status,
// the inspection-level completion predicate, and damage annotations.

//go:generate mockgen -source=inspection_usecase.go -destination=../adapter/http/handlers/mocks/inspection_usecase_mock.go -package=mocks
type IInspectionUseCase interface {
	Create(ctx context.Context, actor entities.Actor, orderID string, t entities.InspectionType) (entities.Inspection, error)
	GetByOrderIDAndType(ctx context.Context, actor entities.Actor, orderID string, t entities.InspectionType) (entities.Inspection, error)
	UpdateItem(ctx context.Context, actor entities.Actor, inspectionID, itemKey string, in UpdateItemInput) (entities.InspectionItem, error)
	Complete(ctx context.Context, actor entities.Actor, inspectionID string) (entities.Inspection, error)
	SetFinalVideo(ctx context.Context, actor entities.Actor, inspectionID, url string) (entities.Inspection, error)
	AddDamages(ctx context.Context, actor entities.Actor, inspectionID string, damages []DamageInput) ([]entities.InspectionDamage, error)
	DeleteDamage(ctx context.Context, actor entities.Actor, inspectionID, damageID string) error
}

type InspectionUseCase struct {
	repo      interfaces.IInspectionRepository
	orderRepo interfaces.IServiceOrderRepository
	template  interfaces.IChecklistTemplateProvider
}

var _ IInspectionUseCase = (*InspectionUseCase)(nil)

func NewInspectionUseCase(repo interfaces.IInspectionRepository, orderRepo interfaces.IServiceOrderRepository, template interfaces.IChecklistTemplateProvider) *InspectionUseCase {
	return &InspectionUseCase{repo: repo, orderRepo: orderRepo, template: template}
}

func (u *InspectionUseCase) Create(ctx context.Context, actor entities.Actor, orderID string, t entities.InspectionType) (entities.Inspection, error) {
	if !entities.IsValidInspectionType(t) {
		return entities.Inspection{}, ErrInvalidInspectionType
	}
	o, err := loadOrder(ctx, u.orderRepo, actor.TenantID, orderID)
	if err != nil {
		return entities.Inspection{}, err
	}

	tmpl, err := u.template.Items(ctx)
	if err != nil {
		return entities.Inspection{}, err
	}

	now := time.Now().UTC()
	insp := entities.Inspection{
		ID:        entities.InspectionID(o.ID, t),
		TenantID:  actor.TenantID,
		OrderID:   o.ID,
		Type:      t,
		Status:    entities.InspectionStatusEmAndamento,
		CreatedAt: now,
		UpdatedAt: now,
	}
	items := materializeItems(insp.ID, tmpl, now)

	created, err := u.repo.Create(ctx, insp, items)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Inspection{}, ErrInspectionAlreadyExists
		}
		log.Printf("[inspection][usecase] create failed order_id=%s type=%s err=%v", o.ID, t, err)
		return entities.Inspection{}, err
	}
	created.Items = items
	log.Printf("[inspection][usecase] create success inspection_id=%s items=%d", created.ID, len(items))
	return created, nil
}

// GetByOrderIDAndType loads the inspection with its items and damages,
// syncing template drift as a read-time side effect. Drift handling is
// append-only: keys added to the template are materialized as pendente, keys
// removed from it never delete recorded rows. A concluded inspection is an
// immutable snapshot and is not synced.
func (u *InspectionUseCase) GetByOrderIDAndType(ctx context.Context, actor entities.Actor, orderID string, t entities.InspectionType) (entities.Inspection, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" || !entities.IsValidInspectionType(t) {
		return entities.Inspection{}, ErrInvalidInspectionInput
	}

	insp, err := loadInspection(ctx, u.repo, actor.TenantID, entities.InspectionID(orderID, t))
	if err != nil {
		return entities.Inspection{}, err
	}

	items, err := u.repo.ListItems(ctx, insp.ID)
	if err != nil {
		return entities.Inspection{}, err
	}

	if insp.Status == entities.InspectionStatusEmAndamento {
		missing, err := u.missingTemplateItems(ctx, insp.ID, items)
		if err != nil {
			return entities.Inspection{}, err
		}
		if len(missing) > 0 {
			if err := u.repo.InsertMissingItems(ctx, missing); err != nil {
				return entities.Inspection{}, err
			}
			items = append(items, missing...)
			log.Printf("[inspection][usecase] template drift synced inspection_id=%s added=%d", insp.ID, len(missing))
		}
	}

	damages, err := u.repo.ListDamages(ctx, actor.TenantID, insp.ID)
	if err != nil {
		return entities.Inspection{}, err
	}

	insp.Items = items
	insp.Damages = damages
	return insp, nil
}

func (u *InspectionUseCase) UpdateItem(ctx context.Context, actor entities.Actor, inspectionID, itemKey string, in UpdateItemInput) (entities.InspectionItem, error) {
	itemKey = strings.TrimSpace(itemKey)
	if itemKey == "" {
		return entities.InspectionItem{}, ErrInvalidInspectionInput
	}
	if !entities.IsValidItemStatus(in.Status) {
		return entities.InspectionItem{}, ErrInvalidItemStatus
	}

	insp, err := loadInspection(ctx, u.repo, actor.TenantID, inspectionID)
	if err != nil {
		return entities.InspectionItem{}, err
	}
	if insp.Status == entities.InspectionStatusConcluida {
		return entities.InspectionItem{}, ErrInspectionLocked
	}

	items, err := u.repo.ListItems(ctx, insp.ID)
	if err != nil {
		return entities.InspectionItem{}, err
	}
	var item *entities.InspectionItem
	for i := range items {
		if items[i].ItemKey == itemKey {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return entities.InspectionItem{}, ErrInspectionItemNotFound
	}

	now := time.Now().UTC()
	item.ApplyStatus(in.Status, strings.TrimSpace(in.DamageType), strings.TrimSpace(in.Severity), now)
	item.PhotoURL = strings.TrimSpace(in.PhotoURL)
	item.Notes = strings.TrimSpace(in.Notes)

	updated, err := u.repo.UpdateItemGuarded(ctx, actor.TenantID, *item)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.InspectionItem{}, ErrConcurrentUpdate
		}
		log.Printf("[inspection][usecase] item update failed inspection_id=%s item_key=%s err=%v", insp.ID, itemKey, err)
		return entities.InspectionItem{}, err
	}
	log.Printf("[inspection][usecase] item updated inspection_id=%s item_key=%s status=%s", insp.ID, itemKey, in.Status)
	return updated, nil
}

// Complete flips the inspection to concluida once every required item left
// pendente has been resolved. The flip is terminal; calling Complete on an
// already concluded inspection is an idempotent no-op.
func (u *InspectionUseCase) Complete(ctx context.Context, actor entities.Actor, inspectionID string) (entities.Inspection, error) {
	insp, err := loadInspection(ctx, u.repo, actor.TenantID, inspectionID)
	if err != nil {
		return entities.Inspection{}, err
	}
	if insp.Status == entities.InspectionStatusConcluida {
		return insp, nil
	}

	items, err := u.repo.ListItems(ctx, insp.ID)
	if err != nil {
		return entities.Inspection{}, err
	}
	insp.Items = items
	if pending := insp.PendingRequired(); len(pending) > 0 {
		return entities.Inspection{}, &IncompleteInspectionError{MissingCount: len(pending)}
	}

	now := time.Now().UTC()
	updated, err := u.repo.Complete(ctx, actor.TenantID, insp.ID, insp.Version, now)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.Inspection{}, ErrConcurrentUpdate
		}
		log.Printf("[inspection][usecase] complete failed inspection_id=%s err=%v", insp.ID, err)
		return entities.Inspection{}, err
	}
	updated.Items = items
	log.Printf("[inspection][usecase] complete success inspection_id=%s signed_at=%s", insp.ID, now.Format(time.RFC3339))
	return updated, nil
}

func (u *InspectionUseCase) SetFinalVideo(ctx context.Context, actor entities.Actor, inspectionID, url string) (entities.Inspection, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return entities.Inspection{}, ErrInvalidInspectionInput
	}

	insp, err := loadInspection(ctx, u.repo, actor.TenantID, inspectionID)
	if err != nil {
		return entities.Inspection{}, err
	}
	if insp.Status == entities.InspectionStatusConcluida {
		return entities.Inspection{}, ErrInspectionLocked
	}

	updated, err := u.repo.SetFinalVideo(ctx, actor.TenantID, insp.ID, url)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.Inspection{}, ErrConcurrentUpdate
		}
		return entities.Inspection{}, err
	}
	return updated, nil
}

// AddDamages creates the batch atomically and returns the rows in submission
// order, echoing each input's ClientRef so the client draft store can map
// server-assigned ids back onto its local markers unambiguously.
func (u *InspectionUseCase) AddDamages(ctx context.Context, actor entities.Actor, inspectionID string, damages []DamageInput) ([]entities.InspectionDamage, error) {
	if len(damages) == 0 {
		return nil, ErrInvalidDamageInput
	}

	insp, err := loadInspection(ctx, u.repo, actor.TenantID, inspectionID)
	if err != nil {
		return nil, err
	}
	if insp.Status == entities.InspectionStatusConcluida {
		return nil, ErrInspectionLocked
	}

	now := time.Now().UTC()
	rows := make([]entities.InspectionDamage, 0, len(damages))
	for _, d := range damages {
		zone := strings.TrimSpace(d.Zone)
		custom := strings.TrimSpace(d.CustomPosition)
		if strings.TrimSpace(d.DamageType) == "" || strings.TrimSpace(d.Severity) == "" {
			return nil, ErrInvalidDamageInput
		}
		if zone == "" && custom == "" {
			return nil, ErrInvalidDamageInput
		}
		rows = append(rows, entities.InspectionDamage{
			ID:             uuid.NewString(),
			ClientRef:      strings.TrimSpace(d.ClientRef),
			TenantID:       actor.TenantID,
			InspectionID:   insp.ID,
			Zone:           zone,
			CustomPosition: custom,
			Position:       d.Position,
			Normal:         d.Normal,
			DamageType:     strings.TrimSpace(d.DamageType),
			Severity:       strings.TrimSpace(d.Severity),
			Notes:          strings.TrimSpace(d.Notes),
			PhotoURL:       strings.TrimSpace(d.PhotoURL),
			CreatedAt:      now,
		})
	}

	created, err := u.repo.CreateDamages(ctx, rows)
	if err != nil {
		log.Printf("[inspection][usecase] damage batch failed inspection_id=%s count=%d err=%v", insp.ID, len(rows), err)
		return nil, err
	}
	log.Printf("[inspection][usecase] damage batch success inspection_id=%s count=%d", insp.ID, len(created))
	return created, nil
}

func (u *InspectionUseCase) DeleteDamage(ctx context.Context, actor entities.Actor, inspectionID, damageID string) error {
	damageID = strings.TrimSpace(damageID)
	if damageID == "" {
		return ErrInvalidDamageInput
	}

	insp, err := loadInspection(ctx, u.repo, actor.TenantID, inspectionID)
	if err != nil {
		return err
	}
	if insp.Status == entities.InspectionStatusConcluida {
		return ErrInspectionLocked
	}

	deleted, err := u.repo.DeleteDamage(ctx, actor.TenantID, insp.ID, damageID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInspectionDamageNotFound
	}
	return nil
}

func (u *InspectionUseCase) missingTemplateItems(ctx context.Context, inspectionID string, existing []entities.InspectionItem) ([]entities.InspectionItem, error) {
	tmpl, err := u.template.Items(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(existing))
	for _, it := range existing {
		known[it.ItemKey] = struct{}{}
	}
	var missing []entities.InspectionItem
	now := time.Now().UTC()
	for _, t := range tmpl {
		if _, ok := known[t.ItemKey]; ok {
			continue
		}
		missing = append(missing, newItemFromTemplate(inspectionID, t, now))
	}
	return missing, nil
}

func materializeItems(inspectionID string, tmpl []entities.ChecklistTemplateItem, now time.Time) []entities.InspectionItem {
	items := make([]entities.InspectionItem, 0, len(tmpl))
	for _, t := range tmpl {
		items = append(items, newItemFromTemplate(inspectionID, t, now))
	}
	return items
}

func newItemFromTemplate(inspectionID string, t entities.ChecklistTemplateItem, now time.Time) entities.InspectionItem {
	return entities.InspectionItem{
		InspectionID: inspectionID,
		ItemKey:      t.ItemKey,
		Category:     t.Category,
		Label:        t.Label,
		IsRequired:   t.IsRequired,
		IsCritical:   t.IsCritical,
		Status:       entities.ItemStatusPendente,
		UpdatedAt:    now,
	}
}

func loadInspection(ctx context.Context, repo interfaces.IInspectionRepository, tenantID, inspectionID string) (entities.Inspection, error) {
	inspectionID = strings.TrimSpace(inspectionID)
	if inspectionID == "" {
		return entities.Inspection{}, ErrInvalidInspectionInput
	}
	insp, err := repo.GetByID(ctx, tenantID, inspectionID)
	if err != nil {
		return entities.Inspection{}, err
	}
	if insp.ID == "" {
		return entities.Inspection{}, ErrInspectionNotFound
	}
	return insp, nil
}

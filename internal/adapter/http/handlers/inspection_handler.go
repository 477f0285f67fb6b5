package handlers

import (
	"errors"
	"log"
	"net/http"

	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInspectionPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid inspection payload", http.StatusBadRequest)

// InspectionHandler handles HTTP requests for vehicle checklists: creation,
// item updates, damage markers and the signed completion that gates order
// conclusion.

type InspectionHandler struct {
	usecase usecase.IInspectionUseCase
}

func NewInspectionHandler(uc usecase.IInspectionUseCase) *InspectionHandler {
	return &InspectionHandler{usecase: uc}
}

// CreateInspection opens a checklist of the given type for an order,
// materializing the current template. One inspection per (order, type).
func (h *InspectionHandler) CreateInspection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	orderID := c.Param("order_id")

	var payload request.CreateInspectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}

	log.Printf("[inspection][handler] create start tenant=%s order_id=%s type=%s", actor.TenantID, orderID, payload.Type)
	insp, err := h.usecase.Create(c.Request.Context(), actor, orderID, payload.ResolveType())
	if err != nil {
		log.Printf("[inspection][handler] create failed tenant=%s order_id=%s err=%v", actor.TenantID, orderID, err)
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[inspection][handler] create success tenant=%s inspection_id=%s", actor.TenantID, insp.ID)

	c.JSON(http.StatusCreated, response.FromInspection(insp))
}

// GetInspection returns the checklist of the given type with items and
// damages hydrated, syncing template drift first when still open.
func (h *InspectionHandler) GetInspection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	orderID := c.Param("order_id")
	inspType := request.CreateInspectionRequest{Type: c.Param("type")}.ResolveType()

	insp, err := h.usecase.GetByOrderIDAndType(c.Request.Context(), actor, orderID, inspType)
	if err != nil {
		log.Printf("[inspection][handler] get failed tenant=%s order_id=%s type=%s err=%v", actor.TenantID, orderID, inspType, err)
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInspection(insp))
}

func (h *InspectionHandler) UpdateInspectionItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	inspectionID := c.Param("inspection_id")
	itemKey := c.Param("item_key")

	var payload request.UpdateInspectionItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.UpdateItem(c.Request.Context(), actor, inspectionID, itemKey, payload.ToInput())
	if err != nil {
		log.Printf("[inspection][handler] update-item failed tenant=%s inspection_id=%s item=%s err=%v", actor.TenantID, inspectionID, itemKey, err)
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInspectionItem(item))
}

// CompleteInspection signs the checklist off. All required items must have
// left pendente; completing an already concluded inspection is a no-op.
func (h *InspectionHandler) CompleteInspection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	inspectionID := c.Param("inspection_id")

	log.Printf("[inspection][handler] complete start tenant=%s inspection_id=%s", actor.TenantID, inspectionID)
	insp, err := h.usecase.Complete(c.Request.Context(), actor, inspectionID)
	if err != nil {
		log.Printf("[inspection][handler] complete failed tenant=%s inspection_id=%s err=%v", actor.TenantID, inspectionID, err)
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[inspection][handler] complete success tenant=%s inspection_id=%s", actor.TenantID, inspectionID)

	c.JSON(http.StatusOK, response.FromInspection(insp))
}

func (h *InspectionHandler) SetFinalVideo(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	inspectionID := c.Param("inspection_id")

	var payload request.SetFinalVideoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}

	insp, err := h.usecase.SetFinalVideo(c.Request.Context(), actor, inspectionID, payload.URL)
	if err != nil {
		log.Printf("[inspection][handler] final-video failed tenant=%s inspection_id=%s err=%v", actor.TenantID, inspectionID, err)
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInspection(insp))
}

// AddDamages persists a batch of damage markers atomically. The response
// preserves submission order so clients can match server ids by index.
func (h *InspectionHandler) AddDamages(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	inspectionID := c.Param("inspection_id")

	var payload request.AddDamagesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}

	damages, err := h.usecase.AddDamages(c.Request.Context(), actor, inspectionID, payload.ToInputs())
	if err != nil {
		log.Printf("[inspection][handler] add-damages failed tenant=%s inspection_id=%s count=%d err=%v", actor.TenantID, inspectionID, len(payload.Damages), err)
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInspectionDamages(damages))
}

func (h *InspectionHandler) DeleteDamage(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	inspectionID := c.Param("inspection_id")
	damageID := c.Param("damage_id")

	if err := h.usecase.DeleteDamage(c.Request.Context(), actor, inspectionID, damageID); err != nil {
		log.Printf("[inspection][handler] delete-damage failed tenant=%s inspection_id=%s damage_id=%s err=%v", actor.TenantID, inspectionID, damageID, err)
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapInspectionError(err error) *pkg.AppError {
	var incomplete *usecase.IncompleteInspectionError

	switch {
	case errors.Is(err, usecase.ErrInvalidInspectionInput), errors.Is(err, usecase.ErrInvalidInspectionType),
		errors.Is(err, usecase.ErrInvalidItemStatus), errors.Is(err, usecase.ErrInvalidDamageInput),
		errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotAssigned):
		return pkg.NewDomainErrorSimple("NOT_ASSIGNED", "Order is assigned to another mechanic", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInspectionNotFound):
		return pkg.NewDomainErrorSimple("INSPECTION_NOT_FOUND", "Inspection not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInspectionItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Inspection item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInspectionDamageNotFound):
		return pkg.NewDomainErrorSimple("DAMAGE_NOT_FOUND", "Damage marker not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInspectionAlreadyExists):
		return pkg.NewDomainErrorSimple("INSPECTION_ALREADY_EXISTS", "Inspection already exists for this order and type", http.StatusConflict)
	case errors.Is(err, usecase.ErrInspectionLocked):
		return pkg.NewDomainErrorSimple("INSPECTION_LOCKED", "Inspection is concluded and read-only", http.StatusConflict)
	case errors.As(err, &incomplete):
		return pkg.NewDomainErrorSimple("INSPECTION_INCOMPLETE", "Required checklist items are still pending", http.StatusConflict).
			WithDetails(map[string]any{"missing_count": incomplete.MissingCount})
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Inspection changed concurrently, retry the operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

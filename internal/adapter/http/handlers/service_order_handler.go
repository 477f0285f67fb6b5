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

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid order payload", http.StatusBadRequest)

// ServiceOrderHandler handles HTTP requests for service orders: CRUD, the
// status state machine and billing adjustments (items, discount).

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

func (h *ServiceOrderHandler) CreateOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[order][handler] create failed tenant=%s err=%v", actor.TenantID, err)
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] create success tenant=%s order_id=%s code=%s", actor.TenantID, order.ID, order.Code)

	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) GetOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	orderID := c.Param("order_id")

	order, err := h.usecase.GetByID(c.Request.Context(), actor, orderID)
	if err != nil {
		log.Printf("[order][handler] get failed tenant=%s order_id=%s err=%v", actor.TenantID, orderID, err)
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) ListOrders(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	orders, err := h.usecase.ListByTenant(c.Request.Context(), actor)
	if err != nil {
		log.Printf("[order][handler] list failed tenant=%s err=%v", actor.TenantID, err)
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

// UpdateOrderStatus drives the lifecycle state machine. Moving to CONCLUIDO
// runs the final-inspection gate inside the use case.
func (h *ServiceOrderHandler) UpdateOrderStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	orderID := c.Param("order_id")

	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	log.Printf("[order][handler] status start tenant=%s order_id=%s target=%s", actor.TenantID, orderID, payload.Status)
	order, err := h.usecase.UpdateStatus(c.Request.Context(), actor, orderID, payload.ResolveStatus())
	if err != nil {
		log.Printf("[order][handler] status failed tenant=%s order_id=%s err=%v", actor.TenantID, orderID, err)
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] status success tenant=%s order_id=%s status=%s", actor.TenantID, orderID, order.Status)

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) ApplyDiscount(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	orderID := c.Param("order_id")

	var payload request.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.ApplyDiscount(c.Request.Context(), actor, orderID, payload.ResolveType(), payload.Value)
	if err != nil {
		log.Printf("[order][handler] discount failed tenant=%s order_id=%s err=%v", actor.TenantID, orderID, err)
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) AddOrderItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	orderID := c.Param("order_id")

	var payload request.AddOrderItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AddItem(c.Request.Context(), actor, orderID, payload.ToItem())
	if err != nil {
		log.Printf("[order][handler] add-item failed tenant=%s order_id=%s err=%v", actor.TenantID, orderID, err)
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func mapServiceOrderError(err error) *pkg.AppError {
	var illegal *usecase.IllegalTransitionError

	switch {
	case errors.Is(err, usecase.ErrInvalidOrderInput), errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid discount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotAssigned):
		return pkg.NewDomainErrorSimple("NOT_ASSIGNED", "Order is assigned to another mechanic", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderNotOpenForChanges):
		return pkg.NewDomainErrorSimple("ORDER_NOT_OPEN_FOR_CHANGES", "Order no longer accepts billing changes", http.StatusConflict)
	case errors.As(err, &illegal):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", illegal.Error(), http.StatusConflict).
			WithDetails(map[string]any{"from": illegal.From, "target": illegal.Target, "allowed": illegal.Allowed})
	case errors.Is(err, usecase.ErrCompletionBlocked):
		return pkg.NewDomainErrorSimple("COMPLETION_BLOCKED", "Final inspection must be concluded before completing the order", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Order changed concurrently, retry the operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

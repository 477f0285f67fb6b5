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

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for order payments and the
// reconciliation balance.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// AddPayment registers a received payment against the order. Paying the
// balance down to zero triggers the automatic completion attempt inside the
// use case.
func (h *PaymentHandler) AddPayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	orderID := c.Param("order_id")

	var payload request.AddPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] add start tenant=%s order_id=%s method=%s amount=%.2f", actor.TenantID, orderID, payload.Method, payload.Amount)
	created, err := h.usecase.AddPayment(c.Request.Context(), actor, orderID, payload.ToInput())
	if err != nil {
		log.Printf("[payment][handler] add failed tenant=%s order_id=%s err=%v", actor.TenantID, orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] add success tenant=%s order_id=%s payment_id=%s", actor.TenantID, orderID, created.ID)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	orderID := c.Param("order_id")

	payments, err := h.usecase.ListByOrder(c.Request.Context(), actor, orderID)
	if err != nil {
		log.Printf("[payment][handler] list failed tenant=%s order_id=%s err=%v", actor.TenantID, orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PaymentHandler) GetBalance(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	orderID := c.Param("order_id")

	balance, err := h.usecase.Balance(c.Request.Context(), actor, orderID)
	if err != nil {
		log.Printf("[payment][handler] balance failed tenant=%s order_id=%s err=%v", actor.TenantID, orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderBalance(balance))
}

func mapPaymentError(err error) *pkg.AppError {
	var exceeds *usecase.AmountExceedsBalanceError

	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInput), errors.Is(err, usecase.ErrInvalidPaymentMethod), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderCancelled):
		return pkg.NewDomainErrorSimple("ORDER_CANCELLED", "Cancelled orders do not accept payments", http.StatusConflict)
	case errors.As(err, &exceeds):
		return pkg.NewDomainErrorSimple("AMOUNT_EXCEEDS_BALANCE", "Payment amount exceeds the remaining balance", http.StatusUnprocessableEntity).
			WithDetails(map[string]any{"balance": exceeds.Balance})
	case errors.Is(err, usecase.ErrGatewayRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_REJECTED", "Payment provider rejected the payment", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Order changed concurrently, retry the operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

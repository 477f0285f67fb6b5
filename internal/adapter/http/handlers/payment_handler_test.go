package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"oficina_os/internal/adapter/http/handlers/mocks"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_AddPayment(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/orders/:order_id/payments", h.AddPayment)

		w := doJSON(r, http.MethodPost, "/v1/orders/os-1/payments", `{"method":"pix"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("amount exceeds balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/orders/:order_id/payments", h.AddPayment)

		uc.EXPECT().AddPayment(gomock.Any(), testActor, "os-1", gomock.Any()).Return(
			entities.Payment{}, &usecase.AmountExceedsBalanceError{Balance: 40})

		w := doJSON(r, http.MethodPost, "/v1/orders/os-1/payments", `{"method":"pix","amount":50}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "AMOUNT_EXCEEDS_BALANCE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		details, _ := resp["details"].(map[string]any)
		if details["balance"] != 40.0 {
			t.Fatalf("balance not reported: %s", w.Body.String())
		}
	})

	t.Run("cancelled order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/orders/:order_id/payments", h.AddPayment)

		uc.EXPECT().AddPayment(gomock.Any(), testActor, "os-1", gomock.Any()).Return(
			entities.Payment{}, usecase.ErrOrderCancelled)

		w := doJSON(r, http.MethodPost, "/v1/orders/os-1/payments", `{"method":"pix","amount":50}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "ORDER_CANCELLED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("gateway rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/orders/:order_id/payments", h.AddPayment)

		uc.EXPECT().AddPayment(gomock.Any(), testActor, "os-1", gomock.Any()).Return(
			entities.Payment{}, usecase.ErrGatewayRejected)

		body := `{"method":"cartao_credito","amount":50,"mp_payload":{"token":"tok-1"}}`
		w := doJSON(r, http.MethodPost, "/v1/orders/os-1/payments", body)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "PAYMENT_PROVIDER_REJECTED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/orders/:order_id/payments", h.AddPayment)

		uc.EXPECT().AddPayment(gomock.Any(), testActor, "os-1", gomock.Any()).Return(
			entities.Payment{ID: "pay-1", OrderID: "os-1", Method: entities.PaymentMethodPix, Amount: 50, PaidAt: time.Now().UTC()}, nil)

		w := doJSON(r, http.MethodPost, "/v1/orders/os-1/payments", `{"method":"PIX","amount":50}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "pay-1" || resp["method"] != "pix" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTenantRouter(t)
		r.GET("/v1/orders/:order_id/payments", h.ListPayments)

		uc.EXPECT().ListByOrder(gomock.Any(), testActor, "os-404").Return(nil, usecase.ErrOrderNotFound)

		w := doJSON(r, http.MethodGet, "/v1/orders/os-404/payments", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTenantRouter(t)
		r.GET("/v1/orders/:order_id/payments", h.ListPayments)

		uc.EXPECT().ListByOrder(gomock.Any(), testActor, "os-1").Return(
			[]entities.Payment{{ID: "pay-1"}, {ID: "pay-2"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/orders/os-1/payments", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := newTenantRouter(t)
	r.GET("/v1/orders/:order_id/balance", h.GetBalance)

	uc.EXPECT().Balance(gomock.Any(), testActor, "os-1").Return(
		usecase.OrderBalance{OrderID: "os-1", Total: 300, Paid: 150.5, Balance: 149.5}, nil)

	w := doJSON(r, http.MethodGet, "/v1/orders/os-1/balance", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["balance"] != 149.5 || resp["paid"] != 150.5 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

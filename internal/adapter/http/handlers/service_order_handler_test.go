package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina_os/internal/adapter/http/handlers/mocks"
	"oficina_os/internal/adapter/http/middleware"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var testActor = entities.Actor{TenantID: "tenant-1", UserID: "user-1", Role: entities.RoleAtendente}

// newTenantRouter builds a test engine with the tenant middleware mounted in
// header-fallback mode, the same wiring the real /v1 group uses.
func newTenantRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("AUTH_JWT_SECRET", "")
	r := gin.New()
	r.Use(middleware.TenantContext())
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Tenant-Id", testActor.TenantID)
	req.Header.Set("X-User-Id", testActor.UserID)
	req.Header.Set("X-User-Role", testActor.Role)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestServiceOrderHandler_CreateOrder(t *testing.T) {
	t.Run("missing tenant header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/orders", h.CreateOrder)

		w := doJSON(r, http.MethodPost, "/v1/orders", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().Create(gomock.Any(), testActor, gomock.Any()).Return(
			entities.ServiceOrder{ID: "os-1", Code: "OS-20260901-AAAA1111", Status: entities.OrderStatusAgendado, ScheduledAt: time.Now()}, nil)

		body := `{"customer_id":"c-1","vehicle_id":"v-1","scheduled_at":"2026-09-02T09:00:00Z"}`
		w := doJSON(r, http.MethodPost, "/v1/orders", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "os-1" || resp["status"] != "AGENDADO" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestServiceOrderHandler_GetOrder(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter(t)
		r.GET("/v1/orders/:order_id", h.GetOrder)

		uc.EXPECT().GetByID(gomock.Any(), testActor, "os-404").Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

		w := doJSON(r, http.MethodGet, "/v1/orders/os-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "ORDER_NOT_FOUND" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter(t)
		r.GET("/v1/orders/:order_id", h.GetOrder)

		uc.EXPECT().GetByID(gomock.Any(), testActor, "os-1").Return(
			entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusEmExecucao}, nil)

		w := doJSON(r, http.MethodGet, "/v1/orders/os-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_UpdateOrderStatus(t *testing.T) {
	t.Run("illegal transition carries details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter(t)
		r.PATCH("/v1/orders/:order_id/status", h.UpdateOrderStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), testActor, "os-1", entities.OrderStatusConcluido).Return(
			entities.ServiceOrder{}, &usecase.IllegalTransitionError{
				From:    entities.OrderStatusAgendado,
				Target:  entities.OrderStatusConcluido,
				Allowed: entities.AllowedTransitions(entities.OrderStatusAgendado),
			})

		w := doJSON(r, http.MethodPatch, "/v1/orders/os-1/status", `{"status":"concluido"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "ILLEGAL_TRANSITION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		details, _ := resp["details"].(map[string]any)
		if details["from"] != "AGENDADO" || details["target"] != "CONCLUIDO" {
			t.Fatalf("missing transition details: %s", w.Body.String())
		}
	})

	t.Run("completion blocked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter(t)
		r.PATCH("/v1/orders/:order_id/status", h.UpdateOrderStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), testActor, "os-1", entities.OrderStatusConcluido).Return(
			entities.ServiceOrder{}, usecase.ErrCompletionBlocked)

		w := doJSON(r, http.MethodPatch, "/v1/orders/os-1/status", `{"status":"CONCLUIDO"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "COMPLETION_BLOCKED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("mechanic not assigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter(t)
		r.PATCH("/v1/orders/:order_id/status", h.UpdateOrderStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), testActor, "os-1", entities.OrderStatusEmVistoria).Return(
			entities.ServiceOrder{}, usecase.ErrOrderNotAssigned)

		w := doJSON(r, http.MethodPatch, "/v1/orders/os-1/status", `{"status":"EM_VISTORIA"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter(t)
		r.PATCH("/v1/orders/:order_id/status", h.UpdateOrderStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), testActor, "os-1", entities.OrderStatusEmVistoria).Return(
			entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusEmVistoria}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/orders/os-1/status", `{"status":"em_vistoria"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_ApplyDiscount(t *testing.T) {
	t.Run("frozen order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter(t)
		r.PATCH("/v1/orders/:order_id/discount", h.ApplyDiscount)

		uc.EXPECT().ApplyDiscount(gomock.Any(), testActor, "os-1", entities.DiscountTypePercentage, 10.0).Return(
			entities.ServiceOrder{}, usecase.ErrOrderNotOpenForChanges)

		w := doJSON(r, http.MethodPatch, "/v1/orders/os-1/discount", `{"type":"percentage","value":10}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid discount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter(t)
		r.PATCH("/v1/orders/:order_id/discount", h.ApplyDiscount)

		uc.EXPECT().ApplyDiscount(gomock.Any(), testActor, "os-1", entities.DiscountTypePercentage, 150.0).Return(
			entities.ServiceOrder{}, usecase.ErrInvalidDiscount)

		w := doJSON(r, http.MethodPatch, "/v1/orders/os-1/discount", `{"type":"PERCENTAGE","value":150}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_AddOrderItem(t *testing.T) {
	t.Run("concurrent update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/orders/:order_id/items", h.AddOrderItem)

		uc.EXPECT().AddItem(gomock.Any(), testActor, "os-1", gomock.Any()).Return(
			entities.ServiceOrder{}, usecase.ErrConcurrentUpdate)

		w := doJSON(r, http.MethodPost, "/v1/orders/os-1/items", `{"description":"peca","quantity":1,"unit_price":50}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "CONCURRENT_UPDATE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/orders/:order_id/items", h.AddOrderItem)

		uc.EXPECT().AddItem(gomock.Any(), testActor, "os-1", entities.OrderItem{Description: "peca", Quantity: 1, UnitPrice: 50}).Return(
			entities.ServiceOrder{ID: "os-1", Subtotal: 150, Total: 150}, nil)

		w := doJSON(r, http.MethodPost, "/v1/orders/os-1/items", `{"description":"peca","quantity":1,"unit_price":50}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

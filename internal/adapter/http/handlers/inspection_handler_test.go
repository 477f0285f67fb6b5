package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"oficina_os/internal/adapter/http/handlers/mocks"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestInspectionHandler_CreateInspection(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/orders/:order_id/inspections", h.CreateInspection)

		w := doJSON(r, http.MethodPost, "/v1/orders/os-1/inspections", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/orders/:order_id/inspections", h.CreateInspection)

		uc.EXPECT().Create(gomock.Any(), testActor, "os-1", entities.InspectionTypeEntrada).Return(
			entities.Inspection{}, usecase.ErrInspectionAlreadyExists)

		w := doJSON(r, http.MethodPost, "/v1/orders/os-1/inspections", `{"type":"entrada"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "INSPECTION_ALREADY_EXISTS" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/orders/:order_id/inspections", h.CreateInspection)

		uc.EXPECT().Create(gomock.Any(), testActor, "os-1", entities.InspectionTypeFinal).Return(
			entities.Inspection{ID: "os-1#final", OrderID: "os-1", Type: entities.InspectionTypeFinal, Status: entities.InspectionStatusEmAndamento}, nil)

		w := doJSON(r, http.MethodPost, "/v1/orders/os-1/inspections", `{"type":"FINAL"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "os-1#final" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInspectionHandler_GetInspection(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.GET("/v1/orders/:order_id/inspections/:type", h.GetInspection)

		uc.EXPECT().GetByOrderIDAndType(gomock.Any(), testActor, "os-1", entities.InspectionTypeEntrada).Return(
			entities.Inspection{}, usecase.ErrInspectionNotFound)

		w := doJSON(r, http.MethodGet, "/v1/orders/os-1/inspections/entrada", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success includes progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.GET("/v1/orders/:order_id/inspections/:type", h.GetInspection)

		uc.EXPECT().GetByOrderIDAndType(gomock.Any(), testActor, "os-1", entities.InspectionTypeEntrada).Return(
			entities.Inspection{
				ID:     "os-1#entrada",
				Status: entities.InspectionStatusEmAndamento,
				Items: []entities.InspectionItem{
					{ItemKey: "freios", IsRequired: true, Status: entities.ItemStatusOK},
					{ItemKey: "pneus", IsRequired: true, Status: entities.ItemStatusPendente},
				},
			}, nil)

		w := doJSON(r, http.MethodGet, "/v1/orders/os-1/inspections/entrada", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["progress"] != 50.0 {
			t.Fatalf("unexpected progress: %s", w.Body.String())
		}
	})
}

func TestInspectionHandler_UpdateInspectionItem(t *testing.T) {
	t.Run("locked inspection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.PATCH("/v1/inspections/:inspection_id/items/:item_key", h.UpdateInspectionItem)

		uc.EXPECT().UpdateItem(gomock.Any(), testActor, "os-1#entrada", "freios", gomock.Any()).Return(
			entities.InspectionItem{}, usecase.ErrInspectionLocked)

		w := doJSON(r, http.MethodPatch, "/v1/inspections/os-1%23entrada/items/freios", `{"status":"ok"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "INSPECTION_LOCKED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.PATCH("/v1/inspections/:inspection_id/items/:item_key", h.UpdateInspectionItem)

		uc.EXPECT().UpdateItem(gomock.Any(), testActor, "os-1#entrada", "parabrisa", gomock.Any()).Return(
			entities.InspectionItem{}, usecase.ErrInspectionItemNotFound)

		w := doJSON(r, http.MethodPatch, "/v1/inspections/os-1%23entrada/items/parabrisa", `{"status":"ok"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "ITEM_NOT_FOUND" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.PATCH("/v1/inspections/:inspection_id/items/:item_key", h.UpdateInspectionItem)

		uc.EXPECT().UpdateItem(gomock.Any(), testActor, "os-1#entrada", "freios", usecase.UpdateItemInput{
			Status: entities.ItemStatusComAvaria, DamageType: "risco", Severity: "leve",
		}).Return(entities.InspectionItem{ItemKey: "freios", Status: entities.ItemStatusComAvaria}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/inspections/os-1%23entrada/items/freios", `{"status":"COM_AVARIA","damage_type":"risco","severity":"leve"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestInspectionHandler_CompleteInspection(t *testing.T) {
	t.Run("incomplete reports missing count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/inspections/:inspection_id/complete", h.CompleteInspection)

		uc.EXPECT().Complete(gomock.Any(), testActor, "os-1#final").Return(
			entities.Inspection{}, &usecase.IncompleteInspectionError{MissingCount: 3})

		w := doJSON(r, http.MethodPost, "/v1/inspections/os-1%23final/complete", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "INSPECTION_INCOMPLETE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		details, _ := resp["details"].(map[string]any)
		if details["missing_count"] != 3.0 {
			t.Fatalf("missing count not reported: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/inspections/:inspection_id/complete", h.CompleteInspection)

		uc.EXPECT().Complete(gomock.Any(), testActor, "os-1#final").Return(
			entities.Inspection{ID: "os-1#final", Status: entities.InspectionStatusConcluida}, nil)

		w := doJSON(r, http.MethodPost, "/v1/inspections/os-1%23final/complete", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "concluida" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInspectionHandler_SetFinalVideo(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.PATCH("/v1/inspections/:inspection_id/final-video", h.SetFinalVideo)

		w := doJSON(r, http.MethodPatch, "/v1/inspections/os-1%23final/final-video", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.PATCH("/v1/inspections/:inspection_id/final-video", h.SetFinalVideo)

		uc.EXPECT().SetFinalVideo(gomock.Any(), testActor, "os-1#final", "https://cdn/v.mp4").Return(
			entities.Inspection{ID: "os-1#final", FinalVideoURL: "https://cdn/v.mp4"}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/inspections/os-1%23final/final-video", `{"url":"https://cdn/v.mp4"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInspectionHandler_AddDamages(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/inspections/:inspection_id/damages", h.AddDamages)

		w := doJSON(r, http.MethodPost, "/v1/inspections/os-1%23entrada/damages", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success echoes client refs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.POST("/v1/inspections/:inspection_id/damages", h.AddDamages)

		uc.EXPECT().AddDamages(gomock.Any(), testActor, "os-1#entrada", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Actor, _ string, inputs []usecase.DamageInput) ([]entities.InspectionDamage, error) {
				if len(inputs) != 1 || inputs[0].ClientRef != "draft-a" {
					t.Fatalf("unexpected inputs: %+v", inputs)
				}
				return []entities.InspectionDamage{
					{ID: "dmg-1", ClientRef: "draft-a", InspectionID: "os-1#entrada", DamageType: "risco", Severity: "leve"},
				}, nil
			},
		)

		body := `{"damages":[{"client_ref":"draft-a","zone":"capo","damage_type":"risco","severity":"leve"}]}`
		w := doJSON(r, http.MethodPost, "/v1/inspections/os-1%23entrada/damages", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp) != 1 || resp[0]["id"] != "dmg-1" || resp[0]["client_ref"] != "draft-a" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInspectionHandler_DeleteDamage(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.DELETE("/v1/inspections/:inspection_id/damages/:damage_id", h.DeleteDamage)

		uc.EXPECT().DeleteDamage(gomock.Any(), testActor, "os-1#entrada", "dmg-404").Return(usecase.ErrInspectionDamageNotFound)

		w := doJSON(r, http.MethodDelete, "/v1/inspections/os-1%23entrada/damages/dmg-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := newTenantRouter(t)
		r.DELETE("/v1/inspections/:inspection_id/damages/:damage_id", h.DeleteDamage)

		uc.EXPECT().DeleteDamage(gomock.Any(), testActor, "os-1#entrada", "dmg-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/inspections/os-1%23entrada/damages/dmg-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina_mecanica/internal/adapter/http/handlers/mocks"
	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWorkOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "c-9", "m-1").Return(entities.WorkOrder{}, usecase.ErrCustomerNotFound)

		r := gin.New()
		r.POST("/ordens_servicos", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/ordens_servicos", bytes.NewBufferString(`{"cliente_id":"c-9","mecanico_id":"m-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "c-1", "m-1").Return(entities.WorkOrder{
			ID:           "os-1",
			ClienteID:    "c-1",
			MecanicoID:   "m-1",
			DataAbertura: time.Now().UTC(),
			Situacao:     entities.WorkOrderStatusPendente,
		}, nil)

		r := gin.New()
		r.POST("/ordens_servicos", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/ordens_servicos", bytes.NewBufferString(`{"cliente_id":"c-1","mecanico_id":"m-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["situacao"] != "pendente" || res["id"] != "os-1" {
			t.Fatalf("unexpected body: %v", res)
		}
	})
}

func TestWorkOrderHandler_AddPart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		uc.EXPECT().AddPart(gomock.Any(), "os-1", "p-1", -2).Return(entities.WorkOrder{}, entities.ErrInvalidQuantity)

		r := gin.New()
		r.POST("/ordens_servicos/:id/pecas", h.AddPart)

		req := httptest.NewRequest(http.MethodPost, "/ordens_servicos/os-1/pecas", bytes.NewBufferString(`{"peca_id":"p-1","quantidade":-2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("concluded order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		uc.EXPECT().AddPart(gomock.Any(), "os-1", "p-1", 2).Return(entities.WorkOrder{}, entities.ErrOrderConcluded)

		r := gin.New()
		r.POST("/ordens_servicos/:id/pecas", h.AddPart)

		req := httptest.NewRequest(http.MethodPost, "/ordens_servicos/os-1/pecas", bytes.NewBufferString(`{"peca_id":"p-1","quantidade":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("merged line returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		uc.EXPECT().AddPart(gomock.Any(), "os-1", "p-1", 3).Return(entities.WorkOrder{
			ID:       "os-1",
			Situacao: entities.WorkOrderStatusPendente,
			Pecas:    []entities.PartLine{{PecaID: "p-1", Quantidade: 5}},
		}, nil)

		r := gin.New()
		r.POST("/ordens_servicos/:id/pecas", h.AddPart)

		req := httptest.NewRequest(http.MethodPost, "/ordens_servicos/os-1/pecas", bytes.NewBufferString(`{"peca_id":"p-1","quantidade":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res struct {
			Pecas []struct {
				PecaID     string `json:"peca_id"`
				Quantidade int    `json:"quantidade"`
			} `json:"pecas"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(res.Pecas) != 1 || res.Pecas[0].Quantidade != 5 {
			t.Fatalf("unexpected part lines: %+v", res.Pecas)
		}
	})
}

func TestWorkOrderHandler_RemovePart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkOrderUseCase(ctrl)
	h := NewWorkOrderHandler(uc)

	uc.EXPECT().RemovePart(gomock.Any(), "os-1", "p-9").Return(entities.WorkOrder{}, usecase.ErrPartLineNotFound)

	r := gin.New()
	r.DELETE("/ordens_servicos/:id/pecas/:peca_id", h.RemovePart)

	req := httptest.NewRequest(http.MethodDelete, "/ordens_servicos/os-1/pecas/p-9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestWorkOrderHandler_Conclude(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success freezes total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		now := time.Now().UTC()
		valor := 21.5
		uc.EXPECT().Conclude(gomock.Any(), "os-1").Return(entities.WorkOrder{
			ID:            "os-1",
			Situacao:      entities.WorkOrderStatusConcluida,
			DataConclusao: &now,
			Valor:         &valor,
		}, nil)

		r := gin.New()
		r.POST("/ordens_servicos/:id/concluir", h.Conclude)

		req := httptest.NewRequest(http.MethodPost, "/ordens_servicos/os-1/concluir", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["situacao"] != "concluida" || res["valor"] != 21.5 {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("already concluded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		uc.EXPECT().Conclude(gomock.Any(), "os-1").Return(entities.WorkOrder{}, entities.ErrOrderConcluded)

		r := gin.New()
		r.POST("/ordens_servicos/:id/concluir", h.Conclude)

		req := httptest.NewRequest(http.MethodPost, "/ordens_servicos/os-1/concluir", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid date filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.GET("/ordens_servicos", h.List)

		req := httptest.NewRequest(http.MethodGet, "/ordens_servicos?data_abertura_inicio=01-01-2024", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filters forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		uc.EXPECT().List(gomock.Any(), gomock.Any(), 1, 10).DoAndReturn(
			func(_ any, filter entities.WorkOrderFilter, _, _ int) ([]entities.WorkOrderSummary, int, error) {
				if filter.ClienteID != "c-1" {
					t.Fatalf("filter not forwarded: %+v", filter)
				}
				return []entities.WorkOrderSummary{}, 0, nil
			},
		)

		r := gin.New()
		r.GET("/ordens_servicos", h.List)

		req := httptest.NewRequest(http.MethodGet, "/ordens_servicos?cliente_id=c-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

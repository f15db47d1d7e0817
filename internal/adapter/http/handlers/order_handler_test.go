package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitmarket/internal/adapter/http/handlers/mocks"
	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	orders := r.Group("/v1/orders")
	orders.POST("", h.CreateOrder)
	orders.GET("", h.ListOrders)
	orders.GET("/:id", h.GetOrder)
	orders.PATCH("/:id/confirm", h.ConfirmOrder)
	orders.PATCH("/:id/cancel", h.CancelOrder)
	orders.PATCH("/:id/payment", h.UpdatePaymentStatus)
	orders.POST("/:id/payments", h.ChargeOrder)
	return r
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, mocks.NewMockIOrderPaymentUseCase(ctrl))
		r := newOrderRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, mocks.NewMockIOrderPaymentUseCase(ctrl))
		r := newOrderRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"user_id":"u-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, mocks.NewMockIOrderPaymentUseCase(ctrl))
		r := newOrderRouter(h)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{
			ID:            "o-1",
			OrderNumber:   "PED-2026-0001",
			Status:        entities.OrderStatusPending,
			PaymentStatus: entities.PaymentStatusPending,
		}, nil)

		body := `{"user_id":"u-1","partner_id":"p-1","service_id":"s-1","service_name":"Day Use","service_type":"day_use","price":49.9}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp["order_number"] != "PED-2026-0001" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, mocks.NewMockIOrderPaymentUseCase(ctrl))
		r := newOrderRouter(h)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error keeps the uniform shape", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, mocks.NewMockIOrderPaymentUseCase(ctrl))
		r := newOrderRouter(h)

		uc.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.ServiceOrder{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var resp struct {
			Success bool   `json:"success"`
			Code    string `json:"code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Success || resp.Code != "INTERNAL_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_ConfirmOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, mocks.NewMockIOrderPaymentUseCase(ctrl))
		r := newOrderRouter(h)

		uc.EXPECT().ConfirmOrder(gomock.Any(), "o-1").Return(entities.ServiceOrder{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, mocks.NewMockIOrderPaymentUseCase(ctrl))
		r := newOrderRouter(h)

		uc.EXPECT().ConfirmOrder(gomock.Any(), "o-1").Return(entities.ServiceOrder{
			ID:     "o-1",
			Status: entities.OrderStatusConfirmed,
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reason forwarded to use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, mocks.NewMockIOrderPaymentUseCase(ctrl))
		r := newOrderRouter(h)

		uc.EXPECT().CancelOrder(gomock.Any(), "o-1", "Cancelado pelo parceiro").Return(entities.ServiceOrder{
			ID:     "o-1",
			Status: entities.OrderStatusCancelled,
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/cancel", bytes.NewBufferString(`{"reason":"Cancelado pelo parceiro"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty body cancels without reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, mocks.NewMockIOrderPaymentUseCase(ctrl))
		r := newOrderRouter(h)

		uc.EXPECT().CancelOrder(gomock.Any(), "o-1", "").Return(entities.ServiceOrder{
			ID:     "o-1",
			Status: entities.OrderStatusCancelled,
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdatePaymentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing payment status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, mocks.NewMockIOrderPaymentUseCase(ctrl))
		r := newOrderRouter(h)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/payment", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, mocks.NewMockIOrderPaymentUseCase(ctrl))
		r := newOrderRouter(h)

		uc.EXPECT().UpdatePaymentStatus(gomock.Any(), "o-1", entities.PaymentStatusPaid).Return(entities.ServiceOrder{
			ID:            "o-1",
			PaymentStatus: entities.PaymentStatusPaid,
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/payment", bytes.NewBufferString(`{"payment_status":"paid"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ChargeOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already paid maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIOrderPaymentUseCase(ctrl)
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), payments)
		r := newOrderRouter(h)

		payments.EXPECT().ChargeOrder(gomock.Any(), "o-1", gomock.Any()).Return(usecase.OrderPaymentResult{}, usecase.ErrOrderAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/payments", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approved charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIOrderPaymentUseCase(ctrl)
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), payments)
		r := newOrderRouter(h)

		payments.EXPECT().ChargeOrder(gomock.Any(), "o-1", gomock.Any()).Return(usecase.OrderPaymentResult{
			Order:             entities.ServiceOrder{ID: "o-1", PaymentStatus: entities.PaymentStatusPaid},
			ProviderPaymentID: "mp-1",
			ProviderStatus:    "approved",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			ProviderStatus string `json:"provider_status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.ProviderStatus != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewOrderHandler(uc, mocks.NewMockIOrderPaymentUseCase(ctrl))
	r := newOrderRouter(h)

	uc.EXPECT().List(gomock.Any(), entities.OrderFilter{
		Status:    entities.OrderStatusPending,
		PartnerID: "p-1",
	}).Return([]entities.ServiceOrder{{ID: "o-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders?status=pending&partner_id=p-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "o-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

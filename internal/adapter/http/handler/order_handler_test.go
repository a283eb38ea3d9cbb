package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/dukaanhq/dukaan/internal/adapter/http/dto"
	"github.com/dukaanhq/dukaan/internal/domain"
	"github.com/dukaanhq/dukaan/internal/usecase"
)

type orderServiceStub struct {
	placeFn  func(ctx context.Context, input usecase.PlaceOrderInput) (*domain.Order, error)
	getFn    func(ctx context.Context, id string) (*domain.Order, error)
	listFn   func(ctx context.Context, input usecase.ListOrdersInput) ([]*domain.Order, int64, error)
	cancelFn func(ctx context.Context, id string) (*domain.Order, error)
}

func (s *orderServiceStub) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*domain.Order, error) {
	return s.placeFn(ctx, input)
}

func (s *orderServiceStub) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.getFn(ctx, id)
}

func (s *orderServiceStub) ListOrders(ctx context.Context, input usecase.ListOrdersInput) ([]*domain.Order, int64, error) {
	return s.listFn(ctx, input)
}

func (s *orderServiceStub) CancelOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.cancelFn(ctx, id)
}

type customerServiceStub struct {
	getFn func(ctx context.Context, id string) (*domain.Customer, error)
}

func (s *customerServiceStub) CreateCustomer(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
	return nil, nil
}

func (s *customerServiceStub) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.getFn(ctx, id)
}

func (s *customerServiceStub) ListCustomers(ctx context.Context, input usecase.ListCustomersInput) ([]*domain.Customer, int64, error) {
	return nil, 0, nil
}

func (s *customerServiceStub) UpdateCustomer(ctx context.Context, input usecase.UpdateCustomerInput) (*domain.Customer, error) {
	return nil, nil
}

func (s *customerServiceStub) DeleteCustomer(ctx context.Context, id string) error {
	return nil
}

func orderRouter(h *OrderHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/orders", h.List)
	r.Post("/orders", h.Place)
	r.Get("/orders/{id}", h.Get)
	r.Get("/orders/{id}/invoice", h.Invoice)
	r.Post("/orders/{id}/cancel", h.Cancel)
	return r
}

func TestOrderHandler_Place(t *testing.T) {
	order := &domain.Order{
		ID:          "ord-1",
		CustomerID:  "cust-1",
		Status:      domain.OrderStatusCompleted,
		TotalAmount: decimal.NewFromInt(360),
		Items: []*domain.OrderItem{
			{ID: "item-1", ProductID: "prod-1", Quantity: 3, UnitPrice: decimal.NewFromInt(120), LineTotal: decimal.NewFromInt(360)},
		},
	}

	var captured usecase.PlaceOrderInput
	h := NewOrderHandler(&orderServiceStub{
		placeFn: func(ctx context.Context, input usecase.PlaceOrderInput) (*domain.Order, error) {
			captured = input
			return order, nil
		},
	}, &customerServiceStub{})

	body, _ := json.Marshal(dto.PlaceOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.OrderItemRequest{{ProductID: "prod-1", Quantity: 3}},
	})
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	orderRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.CustomerID != "cust-1" || len(captured.Items) != 1 || captured.Items[0].Quantity != 3 {
		t.Fatalf("unexpected input: %+v", captured)
	}

	var resp struct {
		Success bool               `json:"success"`
		Data    *dto.OrderResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.Data.ID != "ord-1" || len(resp.Data.Items) != 1 {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
}

func TestOrderHandler_Place_InsufficientStock(t *testing.T) {
	h := NewOrderHandler(&orderServiceStub{
		placeFn: func(ctx context.Context, input usecase.PlaceOrderInput) (*domain.Order, error) {
			return nil, domain.ErrInsufficientStock
		},
	}, &customerServiceStub{})

	body, _ := json.Marshal(dto.PlaceOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: "prod-1", Quantity: 99}},
	})
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	orderRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOrderHandler_Cancel_NotCancellable(t *testing.T) {
	h := NewOrderHandler(&orderServiceStub{
		cancelFn: func(ctx context.Context, id string) (*domain.Order, error) {
			return nil, domain.ErrOrderNotCancellable
		},
	}, &customerServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/orders/ord-1/cancel", nil)
	rec := httptest.NewRecorder()
	orderRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOrderHandler_Invoice(t *testing.T) {
	order := &domain.Order{
		ID:          "ord-1",
		CustomerID:  "cust-1",
		Status:      domain.OrderStatusCompleted,
		TotalAmount: decimal.NewFromInt(360),
	}
	customer := &domain.Customer{ID: "cust-1", Name: "Ali"}

	h := NewOrderHandler(&orderServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Order, error) { return order, nil },
	}, &customerServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Customer, error) {
			if id != "cust-1" {
				t.Fatalf("expected customer lookup for cust-1, got %s", id)
			}
			return customer, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/ord-1/invoice", nil)
	rec := httptest.NewRecorder()
	orderRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool                 `json:"success"`
		Data    *dto.InvoiceResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Customer == nil || resp.Data.Customer.Name != "Ali" {
		t.Fatalf("expected customer on invoice, got %s", rec.Body.String())
	}
}

func TestOrderHandler_Invoice_WalkIn(t *testing.T) {
	order := &domain.Order{ID: "ord-2", Status: domain.OrderStatusCompleted}

	h := NewOrderHandler(&orderServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Order, error) { return order, nil },
	}, &customerServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Customer, error) {
			t.Fatal("customer lookup should not happen for walk-in orders")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/ord-2/invoice", nil)
	rec := httptest.NewRecorder()
	orderRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data *dto.InvoiceResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Customer != nil {
		t.Fatalf("expected no customer on walk-in invoice")
	}
}

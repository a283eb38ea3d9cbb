package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dukaanhq/dukaan/internal/adapter/http/dto"
	"github.com/dukaanhq/dukaan/internal/domain"
	"github.com/dukaanhq/dukaan/internal/usecase"
)

// OrderService defines the behavior needed by OrderHandler.
type OrderService interface {
	PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, input usecase.ListOrdersInput) ([]*domain.Order, int64, error)
	CancelOrder(ctx context.Context, id string) (*domain.Order, error)
}

// OrderHandler handles customer order HTTP requests.
type OrderHandler struct {
	orderUC    OrderService
	customerUC CustomerService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderUC OrderService, customerUC CustomerService) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, customerUC: customerUC}
}

// List lists orders, newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageWindow(r)

	orders, total, err := h.orderUC.ListOrders(r.Context(), usecase.ListOrdersInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeList(w, http.StatusOK, dto.OrdersFromDomain(orders), dto.NewPagination(page, limit, total))
}

// Place records a new sale and deducts stock.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderUC.PlaceOrder(r.Context(), req.ToUseCaseInput(actor(r)))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, dto.OrderFromDomain(order))
}

// Get retrieves an order with its items.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderUC.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, dto.OrderFromDomain(order))
}

// Cancel voids an order and restores stock.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderUC.CancelOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, dto.OrderFromDomain(order))
}

// Invoice returns the printable view of an order: the order with its lines
// plus the customer it was sold to. Walk-in sales carry no customer.
func (h *OrderHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderUC.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	invoice := dto.InvoiceResponse{Order: dto.OrderFromDomain(order)}
	if order.CustomerID != "" {
		customer, err := h.customerUC.GetCustomer(r.Context(), order.CustomerID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		invoice.Customer = dto.CustomerFromDomain(customer)
	}

	writeData(w, http.StatusOK, invoice)
}

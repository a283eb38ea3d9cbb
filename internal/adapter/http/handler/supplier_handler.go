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

// SupplierService defines the behavior needed by SupplierHandler.
type SupplierService interface {
	CreateSupplier(ctx context.Context, input usecase.CreateSupplierInput) (*domain.Supplier, error)
	GetSupplier(ctx context.Context, id string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, input usecase.ListSuppliersInput) ([]*domain.Supplier, int64, error)
	UpdateSupplier(ctx context.Context, input usecase.UpdateSupplierInput) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
}

// SupplierHandler handles supplier HTTP requests.
type SupplierHandler struct {
	supplierUC SupplierService
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(supplierUC SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierUC: supplierUC}
}

// List lists suppliers filtered by name or contact number.
func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageWindow(r)

	suppliers, total, err := h.supplierUC.ListSuppliers(r.Context(), usecase.ListSuppliersInput{
		Search: r.URL.Query().Get("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeList(w, http.StatusOK, dto.SuppliersFromDomain(suppliers), dto.NewPagination(page, limit, total))
}

// Create registers a new supplier.
func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	supplier, err := h.supplierUC.CreateSupplier(r.Context(), req.ToUseCaseInput())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, dto.SupplierFromDomain(supplier))
}

// Get retrieves a supplier by ID.
func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	supplier, err := h.supplierUC.GetSupplier(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, dto.SupplierFromDomain(supplier))
}

// Update updates a supplier's contact fields.
func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	supplier, err := h.supplierUC.UpdateSupplier(r.Context(), req.ToUseCaseInput(chi.URLParam(r, "id")))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, dto.SupplierFromDomain(supplier))
}

// Delete removes a supplier.
func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.supplierUC.DeleteSupplier(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "supplier deleted")
}

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

// ProductService defines the behavior needed by ProductHandler.
type ProductService interface {
	CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, input usecase.ListProductsInput) ([]*domain.Product, int64, error)
	UpdateProduct(ctx context.Context, input usecase.UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ExpiryAlerts(ctx context.Context, days int) ([]*domain.Product, error)
	LowStock(ctx context.Context) ([]*domain.Product, error)
}

// ProductHandler handles product catalog HTTP requests.
type ProductHandler struct {
	productUC ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productUC ProductService) *ProductHandler {
	return &ProductHandler{productUC: productUC}
}

// List lists products filtered by name, SKU or category.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageWindow(r)

	products, total, err := h.productUC.ListProducts(r.Context(), usecase.ListProductsInput{
		Search: r.URL.Query().Get("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeList(w, http.StatusOK, dto.ProductsFromDomain(products), dto.NewPagination(page, limit, total))
}

// Create adds a product to the catalog.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productUC.CreateProduct(r.Context(), req.ToUseCaseInput())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, dto.ProductFromDomain(product))
}

// Get retrieves a product by ID.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.productUC.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, dto.ProductFromDomain(product))
}

// Update updates a product's catalog fields.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productUC.UpdateProduct(r.Context(), req.ToUseCaseInput(chi.URLParam(r, "id")))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, dto.ProductFromDomain(product))
}

// Delete removes a product from the catalog.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.productUC.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "product deleted")
}

// ExpiryAlerts lists products expiring within the given window.
func (h *ProductHandler) ExpiryAlerts(w http.ResponseWriter, r *http.Request) {
	days := parseIntQuery(r, "days", 30)

	products, err := h.productUC.ExpiryAlerts(r.Context(), days)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, dto.ProductsFromDomain(products))
}

// LowStock lists products at or under their stock threshold.
func (h *ProductHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUC.LowStock(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, dto.ProductsFromDomain(products))
}

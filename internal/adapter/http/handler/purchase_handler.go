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

// PurchaseService defines the behavior needed by PurchaseHandler.
type PurchaseService interface {
	RecordPurchase(ctx context.Context, input usecase.RecordPurchaseInput) (*domain.Purchase, error)
	GetPurchase(ctx context.Context, id string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, input usecase.ListPurchasesInput) ([]*domain.Purchase, int64, error)
}

// PurchaseHandler handles supplier purchase HTTP requests.
type PurchaseHandler struct {
	purchaseUC PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseUC PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseUC: purchaseUC}
}

// List lists purchases, newest first.
func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageWindow(r)

	purchases, total, err := h.purchaseUC.ListPurchases(r.Context(), usecase.ListPurchasesInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeList(w, http.StatusOK, dto.PurchasesFromDomain(purchases), dto.NewPagination(page, limit, total))
}

// Record records stock received from a supplier.
func (h *PurchaseHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	purchase, err := h.purchaseUC.RecordPurchase(r.Context(), req.ToUseCaseInput(actor(r)))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, dto.PurchaseFromDomain(purchase))
}

// Get retrieves a purchase with its items.
func (h *PurchaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	purchase, err := h.purchaseUC.GetPurchase(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, dto.PurchaseFromDomain(purchase))
}

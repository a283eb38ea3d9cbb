package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/dukaanhq/dukaan/internal/adapter/http/dto"
	"github.com/dukaanhq/dukaan/internal/domain"
	"github.com/dukaanhq/dukaan/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	CreateLedger(ctx context.Context, input usecase.CreateLedgerInput) (*domain.Ledger, error)
	GetLedger(ctx context.Context, id string) (*domain.Ledger, error)
	ListLedgers(ctx context.Context, input usecase.ListLedgersInput) ([]*domain.LedgerWithLatest, int64, error)
	UpdateLedger(ctx context.Context, input usecase.UpdateLedgerInput) (*domain.Ledger, error)
	DeleteLedger(ctx context.Context, id string) error
	ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.LedgerTransaction, int64, error)
	AddTransaction(ctx context.Context, input usecase.AddTransactionInput) (*domain.LedgerTransaction, error)
	UpdateTransaction(ctx context.Context, input usecase.UpdateTransactionInput) (decimal.Decimal, error)
	DeleteTransaction(ctx context.Context, input usecase.DeleteTransactionInput) (decimal.Decimal, error)
	Stats(ctx context.Context) (*domain.LedgerStats, error)
	AuditTrail(ctx context.Context, ledgerID string, page, limit int) ([]*domain.AuditEntry, error)
}

// LedgerHandler handles ledger and ledger transaction HTTP requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// List lists ledgers filtered by name or contact number, each carrying its
// latest transaction.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageWindow(r)
	search := r.URL.Query().Get("search")

	ledgers, total, err := h.ledgerUC.ListLedgers(r.Context(), usecase.ListLedgersInput{
		Search: search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeList(w, http.StatusOK, dto.LedgersFromDomain(ledgers), dto.NewPagination(page, limit, total))
}

// Create creates a new ledger.
func (h *LedgerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLedgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ledger, err := h.ledgerUC.CreateLedger(r.Context(), req.ToUseCaseInput())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, dto.LedgerFromDomain(ledger))
}

// Get retrieves a ledger by ID.
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.ledgerUC.GetLedger(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, dto.LedgerFromDomain(ledger))
}

// Update updates a ledger's contact fields.
func (h *LedgerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateLedgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ledger, err := h.ledgerUC.UpdateLedger(r.Context(), req.ToUseCaseInput(chi.URLParam(r, "id")))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, dto.LedgerFromDomain(ledger))
}

// Delete deletes a ledger and all its transactions.
func (h *LedgerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ledgerUC.DeleteLedger(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "ledger deleted")
}

// ListTransactions lists a ledger's transactions, newest first.
func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	page, limit := pageWindow(r)

	transactions, total, err := h.ledgerUC.ListTransactions(r.Context(), usecase.ListTransactionsInput{
		LedgerID: chi.URLParam(r, "id"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeList(w, http.StatusOK, dto.TransactionsFromDomain(transactions), dto.NewPagination(page, limit, total))
}

// AddTransaction records a new transaction against a ledger.
func (h *LedgerHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.AddTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	transaction, err := h.ledgerUC.AddTransaction(r.Context(), req.ToUseCaseInput(chi.URLParam(r, "id"), actor(r)))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, dto.TransactionFromDomain(transaction))
}

// UpdateTransaction edits a transaction and recalculates the ledger.
func (h *LedgerHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := req.ToUseCaseInput(chi.URLParam(r, "id"), chi.URLParam(r, "transactionId"), actor(r))
	if _, err := h.ledgerUC.UpdateTransaction(r.Context(), input); err != nil {
		respondError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "transaction updated")
}

// DeleteTransaction removes a transaction and recalculates the ledger.
func (h *LedgerHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	input := usecase.DeleteTransactionInput{
		LedgerID:      chi.URLParam(r, "id"),
		TransactionID: chi.URLParam(r, "transactionId"),
		Actor:         actor(r),
	}
	if _, err := h.ledgerUC.DeleteTransaction(r.Context(), input); err != nil {
		respondError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "transaction deleted")
}

// Stats returns aggregate balances across all ledgers. Unlike the other
// endpoints this writes the stats object bare, without the success envelope;
// the shape is part of the API contract.
func (h *LedgerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ledgerUC.Stats(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.StatsFromDomain(stats))
}

// AuditTrail lists who edited or deleted a ledger's transactions.
func (h *LedgerHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	page, limit := pageWindow(r)

	entries, err := h.ledgerUC.AuditTrail(r.Context(), chi.URLParam(r, "id"), page, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, dto.AuditEntriesFromDomain(entries))
}

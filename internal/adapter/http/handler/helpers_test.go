package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dukaanhq/dukaan/internal/adapter/http/dto"
	"github.com/dukaanhq/dukaan/internal/domain"
)

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ledger?limit=50", nil)
	if got := parseIntQuery(req, "limit", 10); got != 50 {
		t.Fatalf("expected limit=50, got %d", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ledger?limit=invalid", nil)
	if got := parseIntQuery(req, "limit", 10); got != 10 {
		t.Fatalf("expected fallback to default, got %d", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ledger", nil)
	if got := parseIntQuery(req, "limit", 25); got != 25 {
		t.Fatalf("expected default when missing, got %d", got)
	}
}

func TestPageWindow(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ledger?page=3&limit=20", nil)
	page, limit := pageWindow(req)
	if page != 3 || limit != 20 {
		t.Fatalf("expected page=3 limit=20, got %d %d", page, limit)
	}

	// Bounds are normalized the same way the use cases normalize them.
	req = httptest.NewRequest(http.MethodGet, "/ledger?page=-1&limit=9999", nil)
	page, limit = pageWindow(req)
	if page != 1 || limit != 100 {
		t.Fatalf("expected page=1 limit=100, got %d %d", page, limit)
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"ledger not found", domain.ErrLedgerNotFound, http.StatusNotFound},
		{"transaction not found", domain.ErrTransactionNotFound, http.StatusNotFound},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound},
		{"order not found", domain.ErrOrderNotFound, http.StatusNotFound},
		{"duplicate contact", domain.ErrDuplicateContactNumber, http.StatusBadRequest},
		{"duplicate sku", domain.ErrDuplicateSKU, http.StatusBadRequest},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"invalid type", domain.ErrInvalidTransactionType, http.StatusBadRequest},
		{"insufficient stock", domain.ErrInsufficientStock, http.StatusBadRequest},
		{"weak password", domain.ErrPasswordTooWeak, http.StatusBadRequest},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"expired token", domain.ErrExpiredToken, http.StatusUnauthorized},
		{"insufficient role", domain.ErrInsufficientRole, http.StatusForbidden},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteEnvelopes(t *testing.T) {
	rec := httptest.NewRecorder()
	writeList(rec, http.StatusOK, []string{"a"}, dto.NewPagination(1, 10, 25))

	var success dto.SuccessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &success); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !success.Success || success.Pagination == nil || success.Pagination.Pages != 3 {
		t.Fatalf("unexpected list envelope: %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	writeError(rec, http.StatusBadRequest, "bad input")

	var failure dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &failure); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if failure.Success || failure.Error != "bad input" {
		t.Fatalf("unexpected error envelope: %s", rec.Body.String())
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		pages int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{35, 10, 4},
	}

	for _, tt := range tests {
		p := dto.NewPagination(1, tt.limit, tt.total)
		if p.Pages != tt.pages {
			t.Fatalf("total=%d limit=%d: expected pages=%d, got %d", tt.total, tt.limit, tt.pages, p.Pages)
		}
	}
}

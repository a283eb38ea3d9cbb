package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/dukaanhq/dukaan/internal/adapter/http/dto"
	"github.com/dukaanhq/dukaan/internal/adapter/http/middleware"
	"github.com/dukaanhq/dukaan/internal/domain"
)

// actor returns the authenticated user's name for attribution fields, or
// empty when running without authentication.
func actor(r *http.Request) string {
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		return user.Name
	}
	return ""
}

// writeData writes a successful response wrapping data in the envelope.
func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, dto.SuccessResponse{Success: true, Data: data})
}

// writeList writes a successful paginated list response.
func writeList(w http.ResponseWriter, status int, data any, pagination *dto.Pagination) {
	writeJSON(w, status, dto.SuccessResponse{Success: true, Data: data, Pagination: pagination})
}

// writeMessage writes a successful response carrying only a message.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.SuccessResponse{Success: true, Message: message})
}

// writeError writes an error response in the envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.ErrorResponse{Success: false, Error: message})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError maps a domain error to an HTTP response. Unrecognized errors
// get a generic 500 message; the real error is logged server-side only.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapDomainError(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeError(w, status, "internal server error")
		return
	}

	writeError(w, status, err.Error())
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrLedgerNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrSupplierNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrPurchaseNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateContactNumber),
		errors.Is(err, domain.ErrDuplicateSKU),
		errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrInvalidTransactionType),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidContactNumber),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooWeak),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrOrderNotCancellable),
		errors.Is(err, domain.ErrEmptyItems),
		errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInsufficientRole):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// pageWindow reads page/limit query parameters and normalizes them to the
// same bounds the use cases apply, so the pagination envelope matches the
// rows actually returned.
func pageWindow(r *http.Request) (page, limit int) {
	page, limit, _ = domain.NormalizePagination(
		parseIntQuery(r, "page", 1),
		parseIntQuery(r, "limit", 0),
	)
	return page, limit
}

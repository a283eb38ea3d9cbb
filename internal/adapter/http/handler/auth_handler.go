package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dukaanhq/dukaan/internal/adapter/http/dto"
	"github.com/dukaanhq/dukaan/internal/adapter/http/middleware"
	"github.com/dukaanhq/dukaan/internal/infrastructure/metrics"
	"github.com/dukaanhq/dukaan/internal/usecase"
)

// sessionCookieMaxAge matches the server-side session TTL.
const sessionCookieMaxAge = 24 * 60 * 60

// AuthService defines the behavior needed by AuthHandler.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*usecase.LoginResult, error)
	Logout(ctx context.Context, sessionToken string) error
}

// AuthHandler handles login, logout and identity requests.
type AuthHandler struct {
	authUC  AuthService
	metrics *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUC AuthService, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{authUC: authUC, metrics: m}
}

// Login verifies credentials, sets the session cookie and returns a bearer
// token for non-browser clients.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authUC.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.countAttempt("failure")
		respondError(w, r, err)
		return
	}
	h.countAttempt("success")

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    result.SessionToken,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeData(w, http.StatusOK, dto.LoginResponse{
		User:  dto.UserFromDomain(result.User),
		Token: result.BearerToken,
	})
}

// Logout revokes the session and clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.authUC.Logout(r.Context(), cookie.Value); err != nil {
			respondError(w, r, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeMessage(w, http.StatusOK, "logged out")
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	writeData(w, http.StatusOK, dto.UserFromDomain(user))
}

func (h *AuthHandler) countAttempt(result string) {
	if h.metrics != nil {
		h.metrics.AuthAttempts.WithLabelValues(result).Inc()
	}
}

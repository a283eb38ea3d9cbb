package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dukaanhq/dukaan/internal/domain"
)

// ContextKey is the type for context keys.
type ContextKey string

const (
	// UserContextKey is the context key for the authenticated user.
	UserContextKey ContextKey = "user"

	// SessionCookieName is the cookie carrying the opaque session token.
	SessionCookieName = "dukaan_session"
)

// Authenticator resolves a session or bearer token to a user.
type Authenticator interface {
	AuthenticateSession(ctx context.Context, sessionToken string) (*domain.User, error)
	AuthenticateBearer(ctx context.Context, token string) (*domain.User, error)
}

// AuthMiddleware authenticates requests from either a session cookie or an
// Authorization bearer token. When disabled, every request passes through
// unauthenticated and the role gates stand down.
type AuthMiddleware struct {
	auth    Authenticator
	enabled bool
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(auth Authenticator, enabled bool) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, enabled: enabled}
}

// Wrap authenticates the request and stores the user in the context.
func (m *AuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.resolveUser(r)
		if err != nil {
			deny(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolveUser tries the bearer token first, then the session cookie.
func (m *AuthMiddleware) resolveUser(r *http.Request) (*domain.User, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return nil, domain.ErrInvalidToken
		}

		return m.auth.AuthenticateBearer(r.Context(), parts[1])
	}

	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	return m.auth.AuthenticateSession(r.Context(), cookie.Value)
}

// RequireWrite gates routes that create or update records.
func (m *AuthMiddleware) RequireWrite(next http.Handler) http.Handler {
	return m.requireCapability(next, domain.Role.CanWrite)
}

// RequireDelete gates routes that delete records.
func (m *AuthMiddleware) RequireDelete(next http.Handler) http.Handler {
	return m.requireCapability(next, domain.Role.CanDelete)
}

// RequireManageUsers gates user administration routes.
func (m *AuthMiddleware) RequireManageUsers(next http.Handler) http.Handler {
	return m.requireCapability(next, domain.Role.CanManageUsers)
}

// RequireRecordOrders gates order recording, which staff may do.
func (m *AuthMiddleware) RequireRecordOrders(next http.Handler) http.Handler {
	return m.requireCapability(next, domain.Role.CanRecordOrders)
}

func (m *AuthMiddleware) requireCapability(next http.Handler, allowed func(domain.Role) bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled {
			next.ServeHTTP(w, r)
			return
		}

		user, ok := UserFromContext(r.Context())
		if !ok {
			deny(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if !allowed(user.Role) {
			deny(w, http.StatusForbidden, "insufficient permissions")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// UserFromContext returns the authenticated user, if any.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*domain.User)
	return user, ok
}

// deny writes an error response in the API envelope.
func deny(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":false,"error":"` + message + `"}`))
}

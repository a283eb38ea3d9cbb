// Package http wires handlers and middleware into the API router.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dukaanhq/dukaan/internal/adapter/http/handler"
	"github.com/dukaanhq/dukaan/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	LedgerHandler   *handler.LedgerHandler
	ProductHandler  *handler.ProductHandler
	CustomerHandler *handler.CustomerHandler
	SupplierHandler *handler.SupplierHandler
	OrderHandler    *handler.OrderHandler
	PurchaseHandler *handler.PurchaseHandler
	UserHandler     *handler.UserHandler
	AuthHandler     *handler.AuthHandler
	HealthHandler   *handler.HealthHandler

	Auth        *middleware.AuthMiddleware
	Logging     *middleware.LoggingMiddleware
	Metrics     *middleware.MetricsMiddleware
	RateLimiter *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Wrap)
	}
	r.Use(middleware.Recovery)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Unauthenticated surface
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/auth/login", cfg.AuthHandler.Login)

	// Everything else requires a session cookie or bearer token
	r.Group(func(r chi.Router) {
		r.Use(cfg.Auth.Wrap)

		r.Post("/auth/logout", cfg.AuthHandler.Logout)
		r.Get("/auth/me", cfg.AuthHandler.Me)

		r.Route("/ledger", func(r chi.Router) {
			r.Get("/", cfg.LedgerHandler.List)
			r.With(cfg.Auth.RequireWrite).Post("/", cfg.LedgerHandler.Create)
			r.Get("/stats", cfg.LedgerHandler.Stats)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", cfg.LedgerHandler.Get)
				r.With(cfg.Auth.RequireWrite).Put("/", cfg.LedgerHandler.Update)
				r.With(cfg.Auth.RequireDelete).Delete("/", cfg.LedgerHandler.Delete)
				r.Get("/audit", cfg.LedgerHandler.AuditTrail)

				r.Route("/transaction", func(r chi.Router) {
					r.Get("/", cfg.LedgerHandler.ListTransactions)
					r.With(cfg.Auth.RequireWrite).Post("/", cfg.LedgerHandler.AddTransaction)
					r.With(cfg.Auth.RequireWrite).Put("/{transactionId}", cfg.LedgerHandler.UpdateTransaction)
					r.With(cfg.Auth.RequireDelete).Delete("/{transactionId}", cfg.LedgerHandler.DeleteTransaction)
				})
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", cfg.ProductHandler.List)
			r.With(cfg.Auth.RequireWrite).Post("/", cfg.ProductHandler.Create)
			r.Get("/expiry-alerts", cfg.ProductHandler.ExpiryAlerts)
			r.Get("/low-stock", cfg.ProductHandler.LowStock)
			r.Get("/{id}", cfg.ProductHandler.Get)
			r.With(cfg.Auth.RequireWrite).Put("/{id}", cfg.ProductHandler.Update)
			r.With(cfg.Auth.RequireDelete).Delete("/{id}", cfg.ProductHandler.Delete)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", cfg.CustomerHandler.List)
			r.With(cfg.Auth.RequireWrite).Post("/", cfg.CustomerHandler.Create)
			r.Get("/{id}", cfg.CustomerHandler.Get)
			r.With(cfg.Auth.RequireWrite).Put("/{id}", cfg.CustomerHandler.Update)
			r.With(cfg.Auth.RequireDelete).Delete("/{id}", cfg.CustomerHandler.Delete)
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", cfg.SupplierHandler.List)
			r.With(cfg.Auth.RequireWrite).Post("/", cfg.SupplierHandler.Create)
			r.Get("/{id}", cfg.SupplierHandler.Get)
			r.With(cfg.Auth.RequireWrite).Put("/{id}", cfg.SupplierHandler.Update)
			r.With(cfg.Auth.RequireDelete).Delete("/{id}", cfg.SupplierHandler.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", cfg.OrderHandler.List)
			r.With(cfg.Auth.RequireRecordOrders).Post("/", cfg.OrderHandler.Place)
			r.Get("/{id}", cfg.OrderHandler.Get)
			r.Get("/{id}/invoice", cfg.OrderHandler.Invoice)
			r.With(cfg.Auth.RequireWrite).Post("/{id}/cancel", cfg.OrderHandler.Cancel)
		})

		r.Route("/purchases", func(r chi.Router) {
			r.Get("/", cfg.PurchaseHandler.List)
			r.With(cfg.Auth.RequireWrite).Post("/", cfg.PurchaseHandler.Record)
			r.Get("/{id}", cfg.PurchaseHandler.Get)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(cfg.Auth.RequireManageUsers)
			r.Get("/", cfg.UserHandler.List)
			r.Post("/", cfg.UserHandler.Create)
			r.Get("/{id}", cfg.UserHandler.Get)
			r.Put("/{id}", cfg.UserHandler.Update)
			r.Delete("/{id}", cfg.UserHandler.Delete)
		})
	})

	return r
}

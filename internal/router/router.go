package router

import (
	"net/http"

	"taste-heaven/internal/handler"
	"taste-heaven/internal/metrics"
	"taste-heaven/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Order   *handler.OrderHandler
	Contact *handler.ContactHandler
}

// Options configures cross-cutting behaviour.
type Options struct {
	// APIKey guards /api routes when non-empty.
	APIKey string
	// ServiceName names the server spans.
	ServiceName string
	// Metrics enables /metrics and request instrumentation when non-nil.
	Metrics *metrics.Metrics
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, opts Options, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Recovery -> RequestID -> Logging -> Tracing -> Metrics -> CORS -> APIKeyAuth
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	if opts.ServiceName != "" {
		r.Use(middleware.Tracing(opts.ServiceName))
	}
	r.Use(opts.Metrics.Middleware)
	r.Use(middleware.CORS)
	r.Use(middleware.APIKeyAuth(opts.APIKey, logger))

	r.Get("/", handler.Root)
	r.Get("/health", handler.Health)
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", h.Auth.Signup)
		r.Post("/auth/login", h.Auth.Login)
		r.Get("/products", h.Product.List)
		r.Post("/orders", h.Order.Create)
		r.Get("/orders/{email}", h.Order.ListByEmail)
		r.Post("/contact", h.Contact.Submit)
	})

	return r
}

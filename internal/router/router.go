package router

import (
	"net/http"
	"time"

	"product-catalog/internal/handler"
	"product-catalog/internal/middleware"
	"product-catalog/internal/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Options configures the cross-cutting behaviour of the router.
type Options struct {
	CORSAllowedOrigin string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	// Metrics is optional; when nil neither the middleware nor /metrics is
	// installed.
	Metrics *observability.Metrics
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	categoryHandler *handler.CategoryHandler,
	healthHandler *handler.HealthHandler,
	opts Options,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Applied in order: CorrelationID -> Recovery -> RealIP -> Logging -> Metrics -> CORS -> SecurityHeaders
	r.Use(middleware.CorrelationID)
	r.Use(middleware.Recovery(logger))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(middleware.CORS(opts.CORSAllowedOrigin))
	r.Use(middleware.SecurityHeaders())

	r.NotFound(handler.NotFound(logger))
	r.MethodNotAllowed(handler.MethodNotAllowed(logger))

	r.Get("/health", healthHandler.Health)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(opts.RateLimitRequests, opts.RateLimitWindow, logger))

		r.Get("/products", productHandler.GetAll)
		r.Post("/product", productHandler.Create)
		r.Get("/product/{id}", productHandler.GetByID)
		r.Put("/product/{id}", productHandler.Update)
		r.Delete("/product/{id}", productHandler.Delete)

		r.Get("/categories", categoryHandler.GetAll)
		r.Post("/category", categoryHandler.Create)
		r.Get("/category/{id}", categoryHandler.GetByID)
		r.Put("/category/{id}", categoryHandler.Update)
		r.Delete("/category/{id}", categoryHandler.Delete)
	})

	return r
}

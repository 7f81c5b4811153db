package handler

import (
	"context"
	"net/http"
	"time"

	"product-catalog/internal/model"

	"github.com/rs/zerolog"
)

// HealthHandler reports whether the service can reach its database.
type HealthHandler struct {
	check   func(ctx context.Context) error
	timeout time.Duration
	logger  zerolog.Logger
}

// NewHealthHandler creates a health handler around the given dependency check.
func NewHealthHandler(check func(ctx context.Context) error, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		check:   check,
		timeout: 2 * time.Second,
		logger:  logger.With().Str("handler", "health").Logger(),
	}
}

// Health handles GET /health requests.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.check(ctx); err != nil {
		h.logger.Error().Err(err).Msg("health check failed")
		writeError(w, r, http.StatusServiceUnavailable, model.ErrCodeServiceUnavailable, "database unavailable", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

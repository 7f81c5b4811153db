package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"product-catalog/internal/middleware"
	"product-catalog/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// StatusResponse acknowledges a successful create or update.
type StatusResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeStatus writes the {"status":"ok","id":N} acknowledgement.
func writeStatus(w http.ResponseWriter, id int64) {
	writeJSON(w, http.StatusCreated, StatusResponse{Status: "ok", ID: id})
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.CorrelationIDFromContext(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Str("error", code).
		Str("message", message).
		Int("status", status).
		Str("correlation_id", correlationID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeServiceError maps an error returned by a service to an HTTP response.
// notFoundStatus is the status used for PRODUCT_NOT_FOUND and
// CATEGORY_NOT_FOUND, which differs between reads and updates.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundStatus int, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("unexpected service error")
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case model.ErrCodeValidation:
		status = http.StatusBadRequest
	case model.ErrCodeProductNotFound, model.ErrCodeCategoryNotFound:
		status = notFoundStatus
	case model.ErrCodeCategoryExists:
		status = http.StatusConflict
	}

	writeError(w, r, status, domainErr.Code, domainErr.Message, logger)
}

// isNotFound reports whether err is one of the not-found domain errors.
func isNotFound(err error) bool {
	return errors.Is(err, model.ErrProductNotFound) || errors.Is(err, model.ErrCategoryNotFound)
}

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

// parseID extracts the positive integer {id} URL parameter.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}

// NotFound answers requests for unknown routes.
func NotFound(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, "resource not found", logger)
	}
}

// MethodNotAllowed answers requests whose method the route does not support.
func MethodNotAllowed(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", logger)
	}
}

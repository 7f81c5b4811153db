package handler

import (
	"net/http"

	"product-catalog/internal/model"
	"product-catalog/internal/service"

	"github.com/rs/zerolog"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	service service.CategoryService
	logger  zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service service.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger.With().Str("handler", "category").Logger(),
	}
}

// GetAll handles GET /api/categories requests.
func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err, http.StatusNotFound, h.logger)
		return
	}
	if categories == nil {
		categories = []model.CategoryView{}
	}

	writeJSON(w, http.StatusOK, categories)
}

// GetByID handles GET /api/category/{id} requests.
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid category ID", h.logger)
		return
	}

	category, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, http.StatusNotFound, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// Create handles POST /api/category requests.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CategoryPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	id, err := h.service.Add(r.Context(), &payload)
	if err != nil {
		writeServiceError(w, r, err, http.StatusBadRequest, h.logger)
		return
	}

	writeStatus(w, id)
}

// Update handles PUT /api/category/{id} requests.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid category ID", h.logger)
		return
	}

	var payload model.CategoryPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	id, err = h.service.Update(r.Context(), id, &payload)
	if err != nil {
		writeServiceError(w, r, err, http.StatusBadRequest, h.logger)
		return
	}

	writeStatus(w, id)
}

// Delete handles DELETE /api/category/{id} requests. Deleting a category
// that does not exist is not an error.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid category ID", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil && !isNotFound(err) {
		writeServiceError(w, r, err, http.StatusNotFound, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"product-catalog/internal/model"
	"product-catalog/internal/service"

	"github.com/rs/zerolog"
)

// ProductResponse is the JSON form of a product projection. Price is
// rendered as a number.
type ProductResponse struct {
	ID       int64   `json:"id"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
}

func toProductResponse(p model.ProductView) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Category: p.Category,
		Name:     p.Name,
		SKU:      p.SKU,
		Price:    p.Price.InexactFloat64(),
	}
}

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err, http.StatusNotFound, h.logger)
		return
	}

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}

	writeJSON(w, http.StatusOK, response)
}

// GetByID handles GET /api/product/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid product ID", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, http.StatusNotFound, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(*product))
}

// Create handles POST /api/product requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.ProductPayload
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

// Update handles PUT /api/product/{id} requests. Fields absent from the
// body keep their stored values.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid product ID", h.logger)
		return
	}

	var payload model.ProductPayload
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

// Delete handles DELETE /api/product/{id} requests. Deleting a product that
// does not exist is not an error.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid product ID", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil && !isNotFound(err) {
		writeServiceError(w, r, err, http.StatusNotFound, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Package rest provides HTTP handlers for product-related operations.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/abgdnv/catalog/internal/pagination"
	"github.com/abgdnv/catalog/internal/service"
	"github.com/abgdnv/catalog/internal/transport/errmap"
	"github.com/abgdnv/catalog/internal/validation"
	"github.com/abgdnv/catalog/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of the product REST API with the provided service.
func NewHandler(service service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validation.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the catalog service.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Create)
		r.Post("/validate", h.Validate)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Patch("/", h.Update)
			r.Delete("/", h.Remove)
			r.Post("/soft-delete", h.SoftDelete)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// FindByID retrieves an available product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	h.logger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, "Error retrieving product", err, "ID", id)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, found)
}

// FindAll returns one page of available products.
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	page, ok := web.ParseOptionalGte(r, w, h.logger, "page", 1, int64(pagination.DefaultPage))
	if !ok {
		return
	}
	limit, ok := web.ParseOptionalBetween(r, w, h.logger, "limit", 1, int64(pagination.MaxLimit), int64(pagination.DefaultLimit))
	if !ok {
		return
	}

	h.logger.DebugContext(r.Context(), "Received request to find all products", "page", page, "limit", limit)
	list, err := h.service.FindAll(r.Context(), pagination.Request{Page: page, Limit: limit})
	if err != nil {
		h.respondServiceError(w, r, "Error retrieving product list", err)
		return
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list.Data), "total", list.Meta.Total)
	web.RespondJSON(w, h.logger, http.StatusOK, list)
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var productCreateDto service.ProductCreateDto
	if !h.decodeValid(w, r, &productCreateDto) {
		return
	}

	newProduct, err := h.service.Create(r.Context(), productCreateDto)
	if err != nil {
		h.respondServiceError(w, r, "Error creating product", err)
		return
	}
	h.logger.InfoContext(r.Context(), "Product created successfully", "ID", newProduct.ID, "Name", newProduct.Name)
	web.RespondJSON(w, h.logger, http.StatusCreated, newProduct)
}

// Update applies a partial update. An id in the body is ignored.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	var patch service.ProductUpdateDto
	if !h.decodeValid(w, r, &patch) {
		return
	}

	updated, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		h.respondServiceError(w, r, "Error updating product", err, "ID", id)
		return
	}
	h.logger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID)
	web.RespondJSON(w, h.logger, http.StatusOK, updated)
}

// Remove permanently deletes a product.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	removed, err := h.service.Remove(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, "Error deleting product", err, "ID", id)
		return
	}
	h.logger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	web.RespondJSON(w, h.logger, http.StatusOK, removed)
}

// SoftDelete marks a product as unavailable.
func (h *Handler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	updated, err := h.service.SoftDelete(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, "Error soft deleting product", err, "ID", id)
		return
	}
	h.logger.InfoContext(r.Context(), "Product soft deleted", "ID", id)
	web.RespondJSON(w, h.logger, http.StatusOK, updated)
}

// Validate checks that every ID in the body refers to an existing product.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req service.ValidateProductsDto
	if !h.decodeValid(w, r, &req) {
		return
	}

	products, err := h.service.ValidateProducts(r.Context(), req.IDs)
	if err != nil {
		h.respondServiceError(w, r, "Product validation failed", err, "IDs", req.IDs)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, products)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// decodeValid decodes the JSON body into dst and validates it.
// It writes the 400 response itself and returns false on failure.
func (h *Handler) decodeValid(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		if fields, ok := validation.FieldErrors(err); ok {
			h.logger.WarnContext(r.Context(), "Validation errors occurred", "errors", fields)
			web.RespondValidation(w, h.logger, fields)
			return false
		}
		h.logger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// respondServiceError logs err at a level matching its class and writes the mapped status.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, msg string, err error, attrs ...any) {
	p := errmap.FromError(err)
	attrs = append(attrs, "error", err)
	if p.Status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), msg, attrs...)
	} else {
		h.logger.WarnContext(r.Context(), msg, attrs...)
	}

	if len(p.MissingIDs) > 0 {
		web.RespondJSON(w, h.logger, p.Status, map[string]any{"error": p.Message, "missing_ids": p.MissingIDs})
		return
	}
	web.RespondError(w, h.logger, p.Status, p.Message)
}

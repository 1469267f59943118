// Package handler provides HTTP handlers for product-related operations.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/productapi/internal/product/service"
	"github.com/abgdnv/productapi/internal/product/validation"
	"github.com/abgdnv/productapi/pkg/web"
	"github.com/go-chi/chi/v5"
)

const (
	defaultPage  = 1
	defaultLimit = 5
)

// Handler serves the product endpoints.
type Handler struct {
	service   service.ProductService
	validator *validation.Validator
	logger    *slog.Logger
	authGate  func(http.Handler) http.Handler
}

// NewHandler creates a new instance of Handler with the provided service.
// authGate is applied to every route under /api/products.
func NewHandler(service service.ProductService, validator *validation.Validator, authGate func(http.Handler) http.Handler, logger *slog.Logger) *Handler {
	return &Handler{
		service:   service,
		validator: validator,
		logger:    logger.With("component", "rest"),
		authGate:  authGate,
	}
}

// RegisterRoutes registers the HTTP routes for the product service.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Use(h.authGate)

		r.Get("/", h.FindAll)
		r.Post("/", h.Create)
		r.Get("/search/name", h.SearchByName)
		r.Get("/stats/category", h.CategoryStats)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Delete("/", h.DeleteByID)
		})
	})

	r.Get("/healthz", h.HealthCheck)
	r.Get("/readyz", h.ReadinessCheck)
}

// FindAll retrieves one page of products, optionally filtered by category.
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", defaultPage)
	limit := queryInt(r, "limit", defaultLimit)
	query := service.ListQuery{
		Category: r.URL.Query().Get("category"),
		Page:     page,
		Limit:    limit,
	}
	h.logger.DebugContext(r.Context(), "Received request to find all products", "category", query.Category, "page", page, "limit", limit)

	list, err := h.service.FindAll(r.Context(), query)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product list", "total", list.Total, "count", len(list.Data))
	web.RespondJSON(w, h.logger, http.StatusOK, list)
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product", "ID", found.ID, "Name", found.Name)
	web.RespondJSON(w, h.logger, http.StatusOK, found)
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload service.ProductPayload
	if err := h.validator.Decode(r.Body, &payload); err != nil {
		h.respondErr(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), payload)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.logger.InfoContext(r.Context(), "Product created successfully", "ID", created.ID, "Name", created.Name)
	web.RespondJSON(w, h.logger, http.StatusCreated, created)
}

// Update replaces every field of an existing product.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.logger.DebugContext(r.Context(), "Received request to update product", "ID", id)

	var payload service.ProductPayload
	if err := h.validator.Decode(r.Body, &payload); err != nil {
		h.respondErr(w, r, err)
		return
	}

	updated, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.logger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, h.logger, http.StatusOK, updated)
}

type deleteResponse struct {
	Message        string               `json:"message"`
	DeletedProduct []service.ProductDto `json:"deletedProduct"`
}

// DeleteByID deletes a product by its ID and echoes the removed record.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Received request to delete product", "ID", id)
	deleted, err := h.service.DeleteByID(r.Context(), id)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.logger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	web.RespondJSON(w, h.logger, http.StatusOK, deleteResponse{
		Message:        "Product deleted successfully",
		DeletedProduct: []service.ProductDto{*deleted},
	})
}

// SearchByName returns the products whose name contains the query parameter.
func (h *Handler) SearchByName(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	result, err := h.service.SearchByName(r.Context(), query)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.logger.DebugContext(r.Context(), "Search completed", "query", query, "count", result.TotalResults)
	web.RespondJSON(w, h.logger, http.StatusOK, result)
}

// CategoryStats returns the number of products per category.
func (h *Handler) CategoryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.CategoryStats(r.Context())
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, stats)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ReadinessCheck reports 503 until the store answers.
func (h *Handler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Ping(r.Context()); err != nil {
		h.logger.WarnContext(r.Context(), "Readiness check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}

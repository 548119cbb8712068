package products

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/codemedavid/the-peptide-source-ph/internal/catalog"
	"github.com/codemedavid/the-peptide-source-ph/internal/platform/httpx"
	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// Routes registers storefront read endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/products", h.List)
	r.Get("/products/{id}", h.Show)
}

// AdminRoutes registers the admin CRUD endpoints.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Get("/products", h.List)
	r.Get("/products/{id}", h.Show)
	r.Post("/products", h.Create)
	r.Put("/products/{id}", h.Update)
	r.Delete("/products/{id}", h.Delete)
	r.Post("/products/bulk-delete", h.BulkDelete)
	r.Post("/products/{id}/variations", h.CreateVariation)
	r.Put("/variations/{id}", h.UpdateVariation)
	r.Delete("/variations/{id}", h.DeleteVariation)
}

// listedProduct annotates a product with the stock warning shown on
// storefront and admin listings.
type listedProduct struct {
	Product
	LowStock bool `json:"low_stock"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters := listFilters(r)

	result, total, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error("list products failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "failed to load products")
		return
	}

	items := make([]listedProduct, len(result))
	for i, p := range result {
		items[i] = listedProduct{Product: p, LowStock: p.LowStock()}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"products": items,
		"total":    total,
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	product, err := req.ToProduct()
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	created, err := h.service.Create(r.Context(), product)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"success": true, "product": created})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	product, err := req.ToProduct()
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.Update(r.Context(), chi.URLParam(r, "id"), product); err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if len(req.IDs) == 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "no product IDs given")
		return
	}
	result := h.service.BulkDelete(r.Context(), req.IDs)
	if result.Failed > 0 {
		h.logger.Warn("bulk delete finished with failures",
			"requested", result.Requested, "failed", result.Failed)
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) CreateVariation(w http.ResponseWriter, r *http.Request) {
	var req VariationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	variation, err := req.ToVariation()
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	created, err := h.service.AddVariation(r.Context(), chi.URLParam(r, "id"), variation)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"success": true, "variation": created})
}

func (h *Handler) UpdateVariation(w http.ResponseWriter, r *http.Request) {
	var req VariationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	variation, err := req.ToVariation()
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.UpdateVariation(r.Context(), chi.URLParam(r, "id"), variation); err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) DeleteVariation(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteVariation(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, shared.ErrNotFound) {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "product not found")
		return
	}
	httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
}

func listFilters(r *http.Request) catalog.ListFilters {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	filters := catalog.ListFilters{
		Page:     page,
		Limit:    limit,
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		SortBy:   r.URL.Query().Get("sort"),
		SortDir:  r.URL.Query().Get("dir"),
	}
	if v := r.URL.Query().Get("available"); v != "" {
		available := v == "true"
		filters.Available = &available
	}
	if v := r.URL.Query().Get("featured"); v != "" {
		featured := v == "true"
		filters.Featured = &featured
	}
	return filters
}

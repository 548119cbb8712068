package categories

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

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
	r.Get("/categories", h.List)
}

// AdminRoutes registers the admin CRUD endpoints.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Get("/categories", h.AdminList)
	r.Post("/categories", h.Create)
	r.Put("/categories/{id}", h.Update)
	r.Delete("/categories/{id}", h.Delete)
	r.Post("/categories/reorder", h.Reorder)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), true)
	if err != nil {
		h.logger.Error("list categories failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "failed to load categories")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"categories": result})
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListWithCounts(r.Context())
	if err != nil {
		h.logger.Error("list categories failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "failed to load categories")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"categories": result})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var category Category
	if err := httpx.DecodeJSON(r, &category); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	created, err := h.service.Create(r.Context(), category)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"success": true, "category": created})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var category Category
	if err := httpx.DecodeJSON(r, &category); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.service.Update(r.Context(), chi.URLParam(r, "id"), category); err != nil {
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

func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.service.Reorder(r.Context(), req.IDs); err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", "category not found")
	case errors.Is(err, httpx.ErrDuplicate):
		httpx.Problem(w, http.StatusConflict, "Duplicate", err.Error())
	default:
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	}
}

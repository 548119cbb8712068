package payments

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
	r.Get("/payment-methods", h.List)
}

// AdminRoutes registers the admin CRUD endpoints.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Get("/payment-methods", h.AdminList)
	r.Post("/payment-methods", h.Create)
	r.Put("/payment-methods/{id}", h.Update)
	r.Delete("/payment-methods/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), true)
	if err != nil {
		h.logger.Error("list payment methods failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "failed to load payment methods")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"payment_methods": result})
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), false)
	if err != nil {
		h.logger.Error("list payment methods failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "failed to load payment methods")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"payment_methods": result})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var method PaymentMethod
	if err := httpx.DecodeJSON(r, &method); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	created, err := h.service.Create(r.Context(), method)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"success": true, "payment_method": created})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var method PaymentMethod
	if err := httpx.DecodeJSON(r, &method); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.service.Update(r.Context(), chi.URLParam(r, "id"), method); err != nil {
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

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", "payment method not found")
	case errors.Is(err, httpx.ErrDuplicate):
		httpx.Problem(w, http.StatusConflict, "Duplicate", err.Error())
	default:
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	}
}

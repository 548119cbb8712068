package checkout

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/codemedavid/the-peptide-source-ph/internal/platform/httpx"
	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

const (
	sessionKeyStep    = "checkout_step"
	sessionKeyDetails = "checkout_details"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// Routes registers the buyer-facing checkout endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/checkout", h.Show)
	r.Post("/checkout/details", h.SubmitDetails)
	r.Post("/checkout/back", h.Back)
	r.Post("/checkout/place", h.PlaceOrder)
}

// AdminRoutes registers the order views for the admin panel.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Get("/orders", h.ListOrders)
	r.Get("/orders/{id}", h.GetOrder)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	step := currentStep(sess)
	resp := map[string]any{"step": step}
	if raw := sess.Get(sessionKeyDetails); raw != "" {
		var details Details
		if err := json.Unmarshal([]byte(raw), &details); err == nil {
			resp["details"] = details
		}
	}
	httpx.JSON(w, http.StatusOK, resp)
}

func (h *Handler) SubmitDetails(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}

	var details Details
	if err := httpx.DecodeJSON(r, &details); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.service.ValidateDetails(&details); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "all customer and shipping fields are required")
		return
	}
	current := currentStep(sess)
	if current == StepConfirmation {
		// The previous order is done; submitting details opens a fresh flow.
		current = StepDetails
	}
	if err := Transition(current, StepPayment); err != nil {
		httpx.Problem(w, http.StatusConflict, "Conflict", err.Error())
		return
	}

	raw, err := json.Marshal(details)
	if err != nil {
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	sess.Set(sessionKeyDetails, string(raw))
	sess.Set(sessionKeyStep, string(StepPayment))
	httpx.JSON(w, http.StatusOK, map[string]any{"step": StepPayment})
}

func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	if err := Transition(currentStep(sess), StepDetails); err != nil {
		httpx.Problem(w, http.StatusConflict, "Conflict", err.Error())
		return
	}
	sess.Set(sessionKeyStep, string(StepDetails))
	httpx.JSON(w, http.StatusOK, map[string]any{"step": StepDetails})
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}

	var req PlaceOrderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if req.PaymentMethodID == "" {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "payment_method_id is required")
		return
	}
	if err := Transition(currentStep(sess), StepConfirmation); err != nil {
		httpx.Problem(w, http.StatusConflict, "Conflict", err.Error())
		return
	}

	raw := sess.Get(sessionKeyDetails)
	if raw == "" {
		httpx.Problem(w, http.StatusConflict, "Conflict", "checkout details not submitted")
		return
	}
	var details Details
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}

	result, err := h.service.PlaceOrder(r.Context(), sess.ID, details, req.PaymentMethodID)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart):
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "cart is empty")
		case errors.Is(err, ErrPaymentMethodInactive):
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "payment method is not active")
		case errors.Is(err, shared.ErrNotFound):
			httpx.Problem(w, http.StatusNotFound, "Not Found", "payment method not found")
		default:
			h.logger.Error("place order failed", "error", err)
			httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		}
		return
	}

	sess.Set(sessionKeyStep, string(StepConfirmation))
	sess.Delete(sessionKeyDetails)
	httpx.JSON(w, http.StatusCreated, result)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	orders, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("list orders failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "order not found")
			return
		}
		h.logger.Error("get order failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

func currentStep(sess *shared.Session) Step {
	step := Step(sess.Get(sessionKeyStep))
	if !step.Valid() {
		return StepDetails
	}
	return step
}

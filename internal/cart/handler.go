package cart

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/products"
	"github.com/codemedavid/the-peptide-source-ph/internal/platform/httpx"
	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

type Handler struct {
	logger   *slog.Logger
	store    *Store
	products *products.Service
}

func NewHandler(logger *slog.Logger, store *Store, productService *products.Service) *Handler {
	return &Handler{logger: logger, store: store, products: productService}
}

// Routes registers the cart endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/cart", h.Show)
	r.Delete("/cart", h.Clear)
	r.Post("/cart/items", h.AddItem)
	r.Put("/cart/items/{index}", h.UpdateItem)
	r.Delete("/cart/items/{index}", h.RemoveItem)
	r.Get("/cart/quantity", h.Quantity)
}

type addItemRequest struct {
	ProductID   string `json:"product_id"`
	VariationID string `json:"variation_id,omitempty"`
	Quantity    int    `json:"quantity"`
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	c, ok := h.load(w, r)
	if !ok {
		return
	}
	h.respondCart(w, c)
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}

	product, err := h.products.Get(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "product not found")
			return
		}
		h.logger.Error("load product for cart failed", "error", err, "product_id", req.ProductID)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	if !product.Available || product.StockQuantity == 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "product is not available")
		return
	}

	var variation *products.Variation
	if req.VariationID != "" {
		v, ok := product.VariationByID(req.VariationID)
		if !ok {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "variation not found")
			return
		}
		if v.StockQuantity == 0 {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "variation is out of stock")
			return
		}
		variation = &v
	}

	c, ok := h.load(w, r)
	if !ok {
		return
	}
	c.Add(product, variation, req.Quantity)
	if !h.save(w, r, c) {
		return
	}
	h.respondCart(w, c)
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid line index")
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}

	c, ok := h.load(w, r)
	if !ok {
		return
	}
	if err := c.UpdateQuantity(index, req.Quantity); err != nil {
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}
	if !h.save(w, r, c) {
		return
	}
	h.respondCart(w, c)
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid line index")
		return
	}

	c, ok := h.load(w, r)
	if !ok {
		return
	}
	if err := c.Remove(index); err != nil {
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}
	if !h.save(w, r, c) {
		return
	}
	h.respondCart(w, c)
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	if err := h.store.Drop(r.Context(), sess.ID); err != nil {
		h.logger.Error("clear cart failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	h.respondCart(w, &Cart{})
}

func (h *Handler) Quantity(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("product_id")
	if productID == "" {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "product_id is required")
		return
	}
	c, ok := h.load(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"quantity": c.QuantityFor(productID, r.URL.Query().Get("variation_id")),
	})
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*Cart, bool) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return nil, false
	}
	c, err := h.store.Load(r.Context(), sess.ID)
	if err != nil {
		h.logger.Error("load cart failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return nil, false
	}
	return c, true
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, c *Cart) bool {
	sess := shared.SessionFromContext(r.Context())
	if err := h.store.Save(r.Context(), sess.ID, c); err != nil {
		h.logger.Error("save cart failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return false
	}
	return true
}

func (h *Handler) respondCart(w http.ResponseWriter, c *Cart) {
	httpx.JSON(w, http.StatusOK, map[string]any{
		"lines":         c.Lines,
		"item_count":    c.ItemCount(),
		"total":         c.Total().Centavos(),
		"total_display": c.Total().Display(),
	})
}

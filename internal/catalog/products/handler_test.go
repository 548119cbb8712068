package products

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemedavid/the-peptide-source-ph/internal/money"
)

func TestListSurfacesLowStockWarning(t *testing.T) {
	repo := newMockRepository()
	repo.products["p1"] = Product{ID: "p1", Name: "Semaglutide", StockQuantity: 3, BasePrice: money.FromPesos(1000)}
	repo.products["p2"] = Product{ID: "p2", Name: "BPC-157", StockQuantity: 50, BasePrice: money.FromPesos(1500)}
	repo.products["p3"] = Product{ID: "p3", Name: "TB-500", StockQuantity: 0, BasePrice: money.FromPesos(2000)}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(logger, NewService(repo))

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []struct {
			ID       string `json:"id"`
			LowStock bool   `json:"low_stock"`
		} `json:"products"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Total)

	lowStock := make(map[string]bool, len(resp.Products))
	for _, p := range resp.Products {
		lowStock[p.ID] = p.LowStock
	}
	assert.True(t, lowStock["p1"])
	assert.False(t, lowStock["p2"])
	// Out of stock is not "low stock"; the storefront reports it separately.
	assert.False(t, lowStock["p3"])
}

func TestLowStockThreshold(t *testing.T) {
	assert.False(t, Product{StockQuantity: LowStockThreshold}.LowStock())
	assert.True(t, Product{StockQuantity: LowStockThreshold - 1}.LowStock())
	assert.False(t, Product{StockQuantity: 0}.LowStock())
}

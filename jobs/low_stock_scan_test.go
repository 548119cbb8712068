package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemedavid/the-peptide-source-ph/internal/catalog"
	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/products"
)

type mockCatalogReader struct {
	items []products.Product
	calls int
}

func (m *mockCatalogReader) List(_ context.Context, filters catalog.ListFilters) ([]products.Product, int, error) {
	m.calls++
	start := (filters.Page - 1) * filters.Limit
	if start >= len(m.items) {
		return nil, len(m.items), nil
	}
	end := start + filters.Limit
	if end > len(m.items) {
		end = len(m.items)
	}
	return m.items[start:end], len(m.items), nil
}

func TestLowStockScan(t *testing.T) {
	reader := &mockCatalogReader{items: []products.Product{
		{ID: "p1", Name: "Semaglutide", Category: "glp-1", StockQuantity: 3},
		{ID: "p2", Name: "BPC-157", Category: "healing", StockQuantity: 50},
		{ID: "p3", Name: "TB-500", Category: "healing", StockQuantity: 0},
	}}
	job := NewLowStockScanJob(reader, discardLogger(), nil)

	task, err := NewLowStockScanTask(time.Now())
	require.NoError(t, err)
	require.NoError(t, job.Handle(context.Background(), task))
	assert.Equal(t, 1, reader.calls)
}

func TestLowStockScanMalformedPayload(t *testing.T) {
	job := NewLowStockScanJob(&mockCatalogReader{}, discardLogger(), nil)
	err := job.Handle(context.Background(), asynq.NewTask(TaskTypeLowStockScan, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/codemedavid/the-peptide-source-ph/internal/catalog"
	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/products"
	jobmetrics "github.com/codemedavid/the-peptide-source-ph/internal/jobs"
)

// CatalogReader provides the product listing the stock scan walks.
type CatalogReader interface {
	List(ctx context.Context, filters catalog.ListFilters) ([]products.Product, int, error)
}

// LowStockScanJob walks the catalog and surfaces products running low on
// stock, so the shop restocks before listings go dark.
type LowStockScanJob struct {
	Catalog CatalogReader
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
}

// NewLowStockScanJob constructs the job handler.
func NewLowStockScanJob(catalogRepo CatalogReader, logger *slog.Logger, metrics *jobmetrics.Metrics) *LowStockScanJob {
	return &LowStockScanJob{Catalog: catalogRepo, Logger: logger, Metrics: metrics}
}

const scanPageSize = 200

// Handle processes TaskTypeLowStockScan tasks.
func (j *LowStockScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	tracker := j.Metrics.Track("low_stock_scan")

	var payload LowStockScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return tracker.End(asynq.SkipRetry)
	}

	lowByCategory := make(map[string]int)
	outOfStock := 0
	for page := 1; ; page++ {
		items, total, err := j.Catalog.List(ctx, catalog.ListFilters{Page: page, Limit: scanPageSize})
		if err != nil {
			j.Logger.Error("low stock scan: list products", "page", page, "error", err)
			return tracker.End(err)
		}
		for _, p := range items {
			if p.StockQuantity == 0 {
				outOfStock++
				continue
			}
			if p.LowStock() {
				lowByCategory[p.Category]++
				j.Logger.Warn("low stock",
					"product_id", p.ID, "name", p.Name, "stock", p.StockQuantity)
			}
		}
		if page*scanPageSize >= total || len(items) == 0 {
			break
		}
	}

	lowTotal := 0
	for category, count := range lowByCategory {
		lowTotal += count
		j.Metrics.AddLowStock(category, count)
	}
	j.Logger.Info("low stock scan complete", "low", lowTotal, "out_of_stock", outOfStock)
	return tracker.End(nil)
}

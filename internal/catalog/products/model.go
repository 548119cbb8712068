package products

import (
	"time"

	"github.com/codemedavid/the-peptide-source-ph/internal/money"
)

// Product represents a research peptide offered by the storefront.
type Product struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Description       string        `json:"description"`
	Category          string        `json:"category"`
	BasePrice         money.Amount  `json:"base_price"`
	DiscountPrice     *money.Amount `json:"discount_price,omitempty"`
	DiscountStartDate *time.Time    `json:"discount_start_date,omitempty"`
	DiscountEndDate   *time.Time    `json:"discount_end_date,omitempty"`
	DiscountActive    bool          `json:"discount_active"`

	PurityPercentage  float64  `json:"purity_percentage"`
	MolecularWeight   *string  `json:"molecular_weight,omitempty"`
	CASNumber         *string  `json:"cas_number,omitempty"`
	Sequence          *string  `json:"sequence,omitempty"`
	StorageConditions string   `json:"storage_conditions"`
	Inclusions        []string `json:"inclusions,omitempty"`

	StockQuantity int  `json:"stock_quantity"`
	Available     bool `json:"available"`
	Featured      bool `json:"featured"`

	ImageURL       *string `json:"image_url,omitempty"`
	SafetySheetURL *string `json:"safety_sheet_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Variations are ordered by creation time. Each has its own price and
	// stock, independent of the product's base price and discount.
	Variations []Variation `json:"variations,omitempty"`
}

// Variation is a purchasable size option of a product.
type Variation struct {
	ID            string       `json:"id"`
	ProductID     string       `json:"product_id"`
	Name          string       `json:"name"`
	QuantityMG    float64      `json:"quantity_mg"`
	Price         money.Amount `json:"price"`
	StockQuantity int          `json:"stock_quantity"`
	CreatedAt     time.Time    `json:"created_at"`
}

// LowStockThreshold marks the quantity below which listings surface a
// stock warning.
const LowStockThreshold = 10

// LowStock reports whether the product is in stock but running out.
func (p Product) LowStock() bool {
	return p.StockQuantity > 0 && p.StockQuantity < LowStockThreshold
}

// VariationByID returns the variation with the given ID, if owned by p.
func (p Product) VariationByID(id string) (Variation, bool) {
	for _, v := range p.Variations {
		if v.ID == id {
			return v, true
		}
	}
	return Variation{}, false
}

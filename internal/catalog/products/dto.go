package products

import (
	"time"

	"github.com/codemedavid/the-peptide-source-ph/internal/money"
)

// ProductRequest is the admin payload for creating or updating a product.
// Prices travel as decimal peso strings ("1500" or "1500.00") and are parsed
// into centavos before they reach the service layer.
type ProductRequest struct {
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Category          string     `json:"category"`
	BasePrice         string     `json:"base_price"`
	DiscountPrice     *string    `json:"discount_price,omitempty"`
	DiscountStartDate *time.Time `json:"discount_start_date,omitempty"`
	DiscountEndDate   *time.Time `json:"discount_end_date,omitempty"`
	DiscountActive    bool       `json:"discount_active"`
	PurityPercentage  float64    `json:"purity_percentage"`
	MolecularWeight   *string    `json:"molecular_weight,omitempty"`
	CASNumber         *string    `json:"cas_number,omitempty"`
	Sequence          *string    `json:"sequence,omitempty"`
	StorageConditions string     `json:"storage_conditions"`
	Inclusions        []string   `json:"inclusions,omitempty"`
	StockQuantity     int        `json:"stock_quantity"`
	Available         bool       `json:"available"`
	Featured          bool       `json:"featured"`
	ImageURL          *string    `json:"image_url,omitempty"`
	SafetySheetURL    *string    `json:"safety_sheet_url,omitempty"`
}

// ToProduct converts the request into a domain product.
func (r ProductRequest) ToProduct() (Product, error) {
	base, err := money.Parse(r.BasePrice)
	if err != nil {
		return Product{}, err
	}
	var discount *money.Amount
	if r.DiscountPrice != nil && *r.DiscountPrice != "" {
		amount, err := money.Parse(*r.DiscountPrice)
		if err != nil {
			return Product{}, err
		}
		discount = &amount
	}
	return Product{
		Name:              r.Name,
		Description:       r.Description,
		Category:          r.Category,
		BasePrice:         base,
		DiscountPrice:     discount,
		DiscountStartDate: r.DiscountStartDate,
		DiscountEndDate:   r.DiscountEndDate,
		DiscountActive:    r.DiscountActive,
		PurityPercentage:  r.PurityPercentage,
		MolecularWeight:   r.MolecularWeight,
		CASNumber:         r.CASNumber,
		Sequence:          r.Sequence,
		StorageConditions: r.StorageConditions,
		Inclusions:        r.Inclusions,
		StockQuantity:     r.StockQuantity,
		Available:         r.Available,
		Featured:          r.Featured,
		ImageURL:          r.ImageURL,
		SafetySheetURL:    r.SafetySheetURL,
	}, nil
}

// VariationRequest is the admin payload for a product variation.
type VariationRequest struct {
	Name          string  `json:"name"`
	QuantityMG    float64 `json:"quantity_mg"`
	Price         string  `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
}

// ToVariation converts the request into a domain variation.
func (r VariationRequest) ToVariation() (Variation, error) {
	price, err := money.Parse(r.Price)
	if err != nil {
		return Variation{}, err
	}
	return Variation{
		Name:          r.Name,
		QuantityMG:    r.QuantityMG,
		Price:         price,
		StockQuantity: r.StockQuantity,
	}, nil
}

// BulkDeleteRequest lists the product IDs selected for deletion.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

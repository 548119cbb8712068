// Package pricing resolves the unit price for a product selection.
package pricing

import (
	"math"

	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/products"
	"github.com/codemedavid/the-peptide-source-ph/internal/money"
)

// Resolve returns the applicable unit price for a product and an optional
// selected variation. A variation's price overrides both base price and
// discount. Without a variation, an active discount with a positive price
// wins over the base price. Stock and availability are the caller's concern.
func Resolve(product products.Product, variation *products.Variation) money.Amount {
	if variation != nil {
		return variation.Price
	}
	if product.DiscountActive && product.DiscountPrice != nil && product.DiscountPrice.IsPositive() {
		return *product.DiscountPrice
	}
	return product.BasePrice
}

// HasDiscount reports whether the selection is discounted: only meaningful
// when no variation is selected.
func HasDiscount(product products.Product, variation *products.Variation) bool {
	return variation == nil && product.DiscountActive &&
		product.DiscountPrice != nil && product.DiscountPrice.IsPositive()
}

// DiscountPercent returns the rounded saving percentage for display,
// round((1 - discount/base) * 100). Returns 0 when the selection is not
// discounted or the discount is not actually below the base price.
func DiscountPercent(product products.Product, variation *products.Variation) int {
	if !HasDiscount(product, variation) {
		return 0
	}
	base := float64(product.BasePrice.Centavos())
	discount := float64(product.DiscountPrice.Centavos())
	if base <= 0 || discount >= base {
		return 0
	}
	return int(math.Round((1 - discount/base) * 100))
}

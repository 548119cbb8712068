// Package cart implements the session-scoped shopping cart: an ordered list
// of line items with captured unit prices.
package cart

import (
	"errors"

	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/products"
	"github.com/codemedavid/the-peptide-source-ph/internal/money"
	"github.com/codemedavid/the-peptide-source-ph/internal/pricing"
)

// ErrLineNotFound is returned for an out-of-range line index.
var ErrLineNotFound = errors.New("cart line not found")

// Line is one cart entry. It snapshots the product fields the order summary
// needs and captures the unit price at add time, so later catalog price
// changes never reprice an existing cart.
type Line struct {
	ProductID     string       `json:"product_id"`
	ProductName   string       `json:"product_name"`
	Purity        float64      `json:"purity_percentage"`
	VariationID   string       `json:"variation_id,omitempty"`
	VariationName string       `json:"variation_name,omitempty"`
	Quantity      int          `json:"quantity"`
	UnitPrice     money.Amount `json:"unit_price"`
}

// Subtotal is the line's price times quantity.
func (l Line) Subtotal() money.Amount {
	return l.UnitPrice.Mul(l.Quantity)
}

// Cart holds the ordered line list for one session.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add appends a new line, resolving the unit price at the moment of the
// call. Every call creates its own line: identical selections are never
// merged, matching the storefront's long-standing behavior. Quantities below
// one are treated as one.
func (c *Cart) Add(product products.Product, variation *products.Variation, quantity int) Line {
	if quantity < 1 {
		quantity = 1
	}
	line := Line{
		ProductID:   product.ID,
		ProductName: product.Name,
		Purity:      product.PurityPercentage,
		Quantity:    quantity,
		UnitPrice:   pricing.Resolve(product, variation),
	}
	if variation != nil {
		line.VariationID = variation.ID
		line.VariationName = variation.Name
	}
	c.Lines = append(c.Lines, line)
	return line
}

// UpdateQuantity replaces the quantity of one line. Values below one clamp
// to one; removal is an explicit separate action, never decrement-to-zero.
func (c *Cart) UpdateQuantity(index, quantity int) error {
	if index < 0 || index >= len(c.Lines) {
		return ErrLineNotFound
	}
	if quantity < 1 {
		quantity = 1
	}
	c.Lines[index].Quantity = quantity
	return nil
}

// Remove deletes one line.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.Lines) {
		return ErrLineNotFound
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// QuantityFor sums quantities across lines matching the product and
// variation. An empty variationID matches only lines without a variation;
// variation-bearing and plain lines for the same product never combine.
func (c *Cart) QuantityFor(productID, variationID string) int {
	total := 0
	for _, line := range c.Lines {
		if line.ProductID != productID {
			continue
		}
		if line.VariationID != variationID {
			continue
		}
		total += line.Quantity
	}
	return total
}

// Total sums price times quantity over all lines. Shipping is never part of
// the total; it is negotiated on the chat channel after the order is sent.
func (c *Cart) Total() money.Amount {
	var total money.Amount
	for _, line := range c.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// ItemCount is the total quantity across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/products"
	"github.com/codemedavid/the-peptide-source-ph/internal/money"
)

func amt(pesos int64) *money.Amount {
	a := money.FromPesos(pesos)
	return &a
}

func TestResolveBasePrice(t *testing.T) {
	p := products.Product{BasePrice: money.FromPesos(1000)}
	assert.Equal(t, money.FromPesos(1000), Resolve(p, nil))

	// Inactive discount is ignored even when a discount price is set.
	p.DiscountPrice = amt(800)
	assert.Equal(t, money.FromPesos(1000), Resolve(p, nil))
}

func TestResolveDiscountPrice(t *testing.T) {
	p := products.Product{
		BasePrice:      money.FromPesos(1000),
		DiscountPrice:  amt(800),
		DiscountActive: true,
	}
	assert.Equal(t, money.FromPesos(800), Resolve(p, nil))
}

func TestResolveDiscountInvariantViolations(t *testing.T) {
	// Active flag without a price falls back to base price.
	p := products.Product{BasePrice: money.FromPesos(1000), DiscountActive: true}
	assert.Equal(t, money.FromPesos(1000), Resolve(p, nil))

	// Zero discount price is not a price.
	zero := money.Amount(0)
	p.DiscountPrice = &zero
	assert.Equal(t, money.FromPesos(1000), Resolve(p, nil))
}

func TestResolveVariationOverridesEverything(t *testing.T) {
	p := products.Product{
		BasePrice:      money.FromPesos(1000),
		DiscountPrice:  amt(800),
		DiscountActive: true,
	}
	v := products.Variation{Name: "10mg", Price: money.FromPesos(1500)}

	assert.Equal(t, money.FromPesos(1500), Resolve(p, &v))
	assert.False(t, HasDiscount(p, &v))
	assert.Zero(t, DiscountPercent(p, &v))
}

func TestDiscountPercent(t *testing.T) {
	p := products.Product{
		BasePrice:      money.FromPesos(1000),
		DiscountPrice:  amt(800),
		DiscountActive: true,
	}
	assert.Equal(t, 20, DiscountPercent(p, nil))

	p.DiscountPrice = amt(666)
	assert.Equal(t, 33, DiscountPercent(p, nil))

	// Discount at or above base yields no displayable saving.
	p.DiscountPrice = amt(1000)
	assert.Zero(t, DiscountPercent(p, nil))
	p.DiscountPrice = amt(1200)
	assert.Zero(t, DiscountPercent(p, nil))

	p.DiscountActive = false
	p.DiscountPrice = amt(800)
	assert.Zero(t, DiscountPercent(p, nil))
}

package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/products"
	"github.com/codemedavid/the-peptide-source-ph/internal/money"
)

func productA() products.Product {
	return products.Product{
		ID:               "a",
		Name:             "Product A",
		BasePrice:        money.FromPesos(1000),
		PurityPercentage: 99,
	}
}

func productB() products.Product {
	discount := money.FromPesos(800)
	return products.Product{
		ID:             "b",
		Name:           "Product B",
		BasePrice:      money.FromPesos(1000),
		DiscountPrice:  &discount,
		DiscountActive: true,
	}
}

func productC() products.Product {
	discount := money.FromPesos(500)
	p := products.Product{
		ID:             "c",
		Name:           "Product C",
		BasePrice:      money.FromPesos(900),
		DiscountPrice:  &discount,
		DiscountActive: true,
	}
	p.Variations = []products.Variation{
		{ID: "c-10", ProductID: "c", Name: "10mg", Price: money.FromPesos(1500)},
	}
	return p
}

func TestAddNeverMerges(t *testing.T) {
	var c Cart
	c.Add(productA(), nil, 1)
	c.Add(productA(), nil, 1)

	require.Len(t, c.Lines, 2, "identical adds must stay separate lines")

	// Each line is independently removable.
	require.NoError(t, c.Remove(0))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "a", c.Lines[0].ProductID)
}

func TestAddCapturesPriceAtAddTime(t *testing.T) {
	var c Cart
	p := productA()
	c.Add(p, nil, 1)

	// A later catalog change must not reprice the existing line.
	p.BasePrice = money.FromPesos(9999)
	assert.Equal(t, money.FromPesos(1000), c.Lines[0].UnitPrice)
}

func TestUpdateQuantityClampsAtOne(t *testing.T) {
	var c Cart
	c.Add(productA(), nil, 3)

	require.NoError(t, c.UpdateQuantity(0, 0))
	assert.Equal(t, 1, c.Lines[0].Quantity)

	require.NoError(t, c.UpdateQuantity(0, -5))
	assert.Equal(t, 1, c.Lines[0].Quantity)

	require.NoError(t, c.UpdateQuantity(0, 7))
	assert.Equal(t, 7, c.Lines[0].Quantity)

	assert.ErrorIs(t, c.UpdateQuantity(4, 1), ErrLineNotFound)
}

func TestRemoveOutOfRange(t *testing.T) {
	var c Cart
	assert.ErrorIs(t, c.Remove(0), ErrLineNotFound)
	assert.ErrorIs(t, c.Remove(-1), ErrLineNotFound)
}

func TestQuantityForSeparatesVariations(t *testing.T) {
	var c Cart
	p := productC()
	v := p.Variations[0]

	c.Add(p, nil, 2)
	c.Add(p, &v, 3)
	c.Add(p, nil, 1)

	// Plain query counts only variation-less lines.
	assert.Equal(t, 3, c.QuantityFor("c", ""))
	assert.Equal(t, 3, c.QuantityFor("c", "c-10"))
	assert.Zero(t, c.QuantityFor("c", "c-5"))
	assert.Zero(t, c.QuantityFor("x", ""))
}

func TestTotalScenarios(t *testing.T) {
	t.Run("base price no discount", func(t *testing.T) {
		var c Cart
		c.Add(productA(), nil, 2)
		assert.Equal(t, money.FromPesos(2000), c.Total())
	})

	t.Run("active discount", func(t *testing.T) {
		var c Cart
		c.Add(productB(), nil, 1)
		assert.Equal(t, money.FromPesos(800), c.Total())
	})

	t.Run("variation overrides base and discount", func(t *testing.T) {
		var c Cart
		p := productC()
		v := p.Variations[0]
		c.Add(p, &v, 3)
		assert.Equal(t, money.FromPesos(4500), c.Total())
	})

	t.Run("mixed lines", func(t *testing.T) {
		var c Cart
		c.Add(productA(), nil, 2)
		c.Add(productB(), nil, 1)
		assert.Equal(t, money.FromPesos(2800), c.Total())
		assert.Equal(t, 3, c.ItemCount())
	})
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	var c Cart
	c.Add(productA(), nil, 0)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

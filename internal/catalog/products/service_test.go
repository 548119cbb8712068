package products

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemedavid/the-peptide-source-ph/internal/catalog"
	"github.com/codemedavid/the-peptide-source-ph/internal/money"
	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

type mockRepository struct {
	products   map[string]Product
	variations map[string]Variation

	// Error injection
	deleteErrors map[string]error
	createError  error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		products:     make(map[string]Product),
		variations:   make(map[string]Variation),
		deleteErrors: make(map[string]error),
	}
}

func (m *mockRepository) List(ctx context.Context, filters catalog.ListFilters) ([]Product, int, error) {
	result := []Product{}
	for _, p := range m.products {
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		result = append(result, p)
	}
	return result, len(result), nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (Product, error) {
	p, ok := m.products[id]
	if !ok {
		return Product{}, shared.ErrNotFound
	}
	return p, nil
}

func (m *mockRepository) Create(ctx context.Context, product Product) (Product, error) {
	if m.createError != nil {
		return Product{}, m.createError
	}
	m.products[product.ID] = product
	return product, nil
}

func (m *mockRepository) Update(ctx context.Context, id string, product Product) error {
	if _, ok := m.products[id]; !ok {
		return shared.ErrNotFound
	}
	product.ID = id
	m.products[id] = product
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	if err := m.deleteErrors[id]; err != nil {
		return err
	}
	if _, ok := m.products[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockRepository) ListVariations(ctx context.Context, productID string) ([]Variation, error) {
	result := []Variation{}
	for _, v := range m.variations {
		if v.ProductID == productID {
			result = append(result, v)
		}
	}
	return result, nil
}

func (m *mockRepository) CreateVariation(ctx context.Context, variation Variation) (Variation, error) {
	m.variations[variation.ID] = variation
	return variation, nil
}

func (m *mockRepository) UpdateVariation(ctx context.Context, id string, variation Variation) error {
	if _, ok := m.variations[id]; !ok {
		return shared.ErrNotFound
	}
	variation.ID = id
	m.variations[id] = variation
	return nil
}

func (m *mockRepository) DeleteVariation(ctx context.Context, id string) error {
	if _, ok := m.variations[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.variations, id)
	return nil
}

func validProduct() Product {
	return Product{
		Name:              "BPC-157",
		Description:       "Body protection compound",
		Category:          "healing",
		BasePrice:         money.FromPesos(1000),
		PurityPercentage:  99,
		StorageConditions: "Store below 25C",
		StockQuantity:     50,
		Available:         true,
	}
}

func seed(t *testing.T, svc *Service, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		created, err := svc.Create(context.Background(), validProduct())
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	return ids
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMockRepository())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Product)
	}{
		{"missing name", func(p *Product) { p.Name = "  " }},
		{"missing category", func(p *Product) { p.Category = "" }},
		{"zero base price", func(p *Product) { p.BasePrice = 0 }},
		{"purity above 100", func(p *Product) { p.PurityPercentage = 101 }},
		{"negative stock", func(p *Product) { p.StockQuantity = -1 }},
		{"discount active without price", func(p *Product) { p.DiscountActive = true }},
		{"discount not below base", func(p *Product) {
			discount := money.FromPesos(1000)
			p.DiscountActive = true
			p.DiscountPrice = &discount
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)
			_, err := svc.Create(ctx, p)
			assert.Error(t, err)
		})
	}
}

func TestCreateAssignsID(t *testing.T) {
	svc := NewService(newMockRepository())
	created, err := svc.Create(context.Background(), validProduct())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestBulkDeletePartialFailure(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ids := seed(t, svc, 5)

	// Third unit fails; the rest must still be attempted.
	repo.deleteErrors[ids[2]] = errors.New("row locked")

	result := svc.BulkDelete(context.Background(), ids)

	assert.Equal(t, 5, result.Requested)
	assert.Equal(t, 4, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, ids[2], result.Errors[0].ID)

	// No rollback of the successful units.
	for i, id := range ids {
		_, err := svc.Get(context.Background(), id)
		if i == 2 {
			assert.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, shared.ErrNotFound)
		}
	}
}

func TestBulkDeleteAllSucceed(t *testing.T) {
	svc := NewService(newMockRepository())
	ids := seed(t, svc, 3)

	result := svc.BulkDelete(context.Background(), ids)
	assert.Equal(t, 3, result.Succeeded)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.Errors)
}

func TestAddVariation(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ids := seed(t, svc, 1)

	variation, err := svc.AddVariation(context.Background(), ids[0], Variation{
		Name:          "10mg",
		QuantityMG:    10,
		Price:         money.FromPesos(1500),
		StockQuantity: 20,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, variation.ID)
	assert.Equal(t, ids[0], variation.ProductID)

	_, err = svc.AddVariation(context.Background(), "missing", Variation{Name: "10mg", Price: money.FromPesos(1)})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = svc.AddVariation(context.Background(), ids[0], Variation{Name: "5mg"})
	assert.Error(t, err, "zero price must be rejected")
}

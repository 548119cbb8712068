package categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

type mockRepository struct {
	categories map[string]Category
	order      []string
}

func newMockRepository() *mockRepository {
	return &mockRepository{categories: make(map[string]Category)}
}

func (m *mockRepository) List(ctx context.Context, activeOnly bool) ([]Category, error) {
	result := []Category{}
	for _, c := range m.categories {
		if activeOnly && !c.Active {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (m *mockRepository) ListWithCounts(ctx context.Context) ([]Category, error) {
	return m.List(ctx, false)
}

func (m *mockRepository) Get(ctx context.Context, id string) (Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return Category{}, shared.ErrNotFound
	}
	return c, nil
}

func (m *mockRepository) Create(ctx context.Context, category Category) (Category, error) {
	m.categories[category.ID] = category
	return category, nil
}

func (m *mockRepository) Update(ctx context.Context, id string, category Category) error {
	if _, ok := m.categories[id]; !ok {
		return shared.ErrNotFound
	}
	m.categories[id] = category
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.categories[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *mockRepository) Reorder(ctx context.Context, ids []string) error {
	m.order = ids
	return nil
}

func TestCreateRejectsMalformedKeys(t *testing.T) {
	svc := NewService(newMockRepository())
	ctx := context.Background()

	for _, id := range []string{"Hot-Drinks", "weight_management", "fat dissolving", "-leading", "trailing-", "double--dash"} {
		_, err := svc.Create(ctx, Category{ID: id, Name: "Test", Icon: "Star"})
		assert.ErrorIs(t, err, shared.ErrInvalidKey, id)
	}

	for _, id := range []string{"gcash", "weight-management", "fat-dissolving-2"} {
		_, err := svc.Create(ctx, Category{ID: id, Name: "Test", Icon: "Star"})
		assert.NoError(t, err, id)
	}
}

func TestCreateSlugsFromName(t *testing.T) {
	svc := NewService(newMockRepository())
	created, err := svc.Create(context.Background(), Category{Name: "Weight Management!", Icon: "Leaf"})
	require.NoError(t, err)
	assert.Equal(t, "weight-management", created.ID)
}

func TestCreateNormalizesUnknownIcon(t *testing.T) {
	svc := NewService(newMockRepository())
	created, err := svc.Create(context.Background(), Category{ID: "misc", Name: "Misc", Icon: "NoSuchIcon"})
	require.NoError(t, err)
	assert.Equal(t, "Package", created.Icon)

	created, err = svc.Create(context.Background(), Category{ID: "misc-2", Name: "Misc", Icon: "FlaskConical"})
	require.NoError(t, err)
	assert.Equal(t, "FlaskConical", created.Icon)
}

func TestIconFor(t *testing.T) {
	assert.Equal(t, "Star", IconFor("Star"))
	assert.Equal(t, "Package", IconFor(""))
	assert.Equal(t, "Package", IconFor("Cake"))
	assert.True(t, KnownIcon("Leaf"))
	assert.False(t, KnownIcon("leaf"))
}

func TestReorder(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	require.Error(t, svc.Reorder(context.Background(), nil))
	require.NoError(t, svc.Reorder(context.Background(), []string{"b", "a"}))
	assert.Equal(t, []string{"b", "a"}, repo.order)
}

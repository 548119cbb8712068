package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

type mockRepository struct {
	methods map[string]PaymentMethod
}

func newMockRepository() *mockRepository {
	return &mockRepository{methods: make(map[string]PaymentMethod)}
}

func (m *mockRepository) List(_ context.Context, activeOnly bool) ([]PaymentMethod, error) {
	var result []PaymentMethod
	for _, pm := range m.methods {
		if activeOnly && !pm.Active {
			continue
		}
		result = append(result, pm)
	}
	return result, nil
}

func (m *mockRepository) Get(_ context.Context, id string) (PaymentMethod, error) {
	pm, ok := m.methods[id]
	if !ok {
		return PaymentMethod{}, shared.ErrNotFound
	}
	return pm, nil
}

func (m *mockRepository) Create(_ context.Context, pm PaymentMethod) (PaymentMethod, error) {
	m.methods[pm.ID] = pm
	return pm, nil
}

func (m *mockRepository) Update(_ context.Context, id string, pm PaymentMethod) error {
	if _, ok := m.methods[id]; !ok {
		return shared.ErrNotFound
	}
	pm.ID = id
	m.methods[id] = pm
	return nil
}

func (m *mockRepository) Delete(_ context.Context, id string) error {
	if _, ok := m.methods[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.methods, id)
	return nil
}

func validMethod() PaymentMethod {
	return PaymentMethod{
		Name:          "GCash",
		AccountNumber: "09171234567",
		AccountName:   "Shop Owner",
		Active:        true,
	}
}

func TestCreateSlugsIDFromName(t *testing.T) {
	s := NewService(newMockRepository())

	method := validMethod()
	method.Name = "BPI Bank Transfer"
	created, err := s.Create(context.Background(), method)
	require.NoError(t, err)
	assert.Equal(t, "bpi-bank-transfer", created.ID)
}

func TestCreateRejectsMalformedID(t *testing.T) {
	s := NewService(newMockRepository())

	method := validMethod()
	method.ID = "GCash Wallet"
	_, err := s.Create(context.Background(), method)
	assert.ErrorIs(t, err, shared.ErrInvalidKey)
}

func TestCreateRequiresAccountNumber(t *testing.T) {
	s := NewService(newMockRepository())

	method := validMethod()
	method.AccountNumber = "   "
	_, err := s.Create(context.Background(), method)
	assert.Error(t, err)
}

func TestUpdateUnknownMethod(t *testing.T) {
	s := NewService(newMockRepository())

	err := s.Update(context.Background(), "missing", validMethod())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestListActiveOnly(t *testing.T) {
	repo := newMockRepository()
	repo.methods["gcash"] = PaymentMethod{ID: "gcash", Name: "GCash", AccountNumber: "0917", Active: true}
	repo.methods["old"] = PaymentMethod{ID: "old", Name: "Old Wallet", AccountNumber: "000", Active: false}
	s := NewService(repo)

	active, err := s.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "gcash", active[0].ID)

	all, err := s.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetEmptyID(t *testing.T) {
	s := NewService(newMockRepository())
	_, err := s.Get(context.Background(), "")
	assert.Error(t, err)
}

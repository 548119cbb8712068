package products

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/codemedavid/the-peptide-source-ph/internal/catalog"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters catalog.ListFilters) ([]Product, int, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	if id == "" {
		return Product{}, errors.New("invalid product ID")
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, product Product) (Product, error) {
	if err := s.validate(product); err != nil {
		return Product{}, err
	}
	product.ID = uuid.NewString()
	return s.repo.Create(ctx, product)
}

func (s *Service) Update(ctx context.Context, id string, product Product) error {
	if id == "" {
		return errors.New("invalid product ID")
	}
	if err := s.validate(product); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, product)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("invalid product ID")
	}
	return s.repo.Delete(ctx, id)
}

// BulkDelete removes the given products one at a time. Each unit is attempted
// independently; a failure never aborts the remaining deletions and nothing
// is rolled back.
func (s *Service) BulkDelete(ctx context.Context, ids []string) catalog.BulkResult {
	result := catalog.BulkResult{Requested: len(ids)}
	for _, id := range ids {
		if err := s.Delete(ctx, id); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, catalog.BulkError{ID: id, Error: err.Error()})
			continue
		}
		result.Succeeded++
	}
	return result
}

func (s *Service) AddVariation(ctx context.Context, productID string, variation Variation) (Variation, error) {
	if _, err := s.repo.Get(ctx, productID); err != nil {
		return Variation{}, err
	}
	if err := s.validateVariation(variation); err != nil {
		return Variation{}, err
	}
	variation.ID = uuid.NewString()
	variation.ProductID = productID
	return s.repo.CreateVariation(ctx, variation)
}

func (s *Service) UpdateVariation(ctx context.Context, id string, variation Variation) error {
	if id == "" {
		return errors.New("invalid variation ID")
	}
	if err := s.validateVariation(variation); err != nil {
		return err
	}
	return s.repo.UpdateVariation(ctx, id, variation)
}

func (s *Service) DeleteVariation(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("invalid variation ID")
	}
	return s.repo.DeleteVariation(ctx, id)
}

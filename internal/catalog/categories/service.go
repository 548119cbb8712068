package categories

import (
	"context"
	"errors"

	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]Category, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *Service) ListWithCounts(ctx context.Context) ([]Category, error) {
	return s.repo.ListWithCounts(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Category, error) {
	if id == "" {
		return Category{}, errors.New("invalid category ID")
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, category Category) (Category, error) {
	if category.ID == "" {
		category.ID = shared.Slugify(category.Name)
	}
	if err := s.validate(category); err != nil {
		return Category{}, err
	}
	category.Icon = IconFor(category.Icon)
	return s.repo.Create(ctx, category)
}

func (s *Service) Update(ctx context.Context, id string, category Category) error {
	if id == "" {
		return errors.New("invalid category ID")
	}
	category.ID = id
	if err := s.validate(category); err != nil {
		return err
	}
	category.Icon = IconFor(category.Icon)
	return s.repo.Update(ctx, id, category)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("invalid category ID")
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) Reorder(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return errors.New("no category IDs given")
	}
	return s.repo.Reorder(ctx, ids)
}

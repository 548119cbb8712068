package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]PaymentMethod, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *Service) Get(ctx context.Context, id string) (PaymentMethod, error) {
	if id == "" {
		return PaymentMethod{}, errors.New("invalid payment method ID")
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, method PaymentMethod) (PaymentMethod, error) {
	if method.ID == "" {
		method.ID = shared.Slugify(method.Name)
	}
	if err := s.validate(method); err != nil {
		return PaymentMethod{}, err
	}
	return s.repo.Create(ctx, method)
}

func (s *Service) Update(ctx context.Context, id string, method PaymentMethod) error {
	if id == "" {
		return errors.New("invalid payment method ID")
	}
	method.ID = id
	if err := s.validate(method); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, method)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("invalid payment method ID")
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) validate(m PaymentMethod) error {
	if err := shared.ValidateKey(m.ID); err != nil {
		return fmt.Errorf("payment method ID %q: %w", m.ID, err)
	}
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("payment method name is required")
	}
	if strings.TrimSpace(m.AccountNumber) == "" {
		return errors.New("account number is required")
	}
	return nil
}

package products

import (
	"errors"
	"strings"
)

func (s *Service) validate(p Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("product name is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		return errors.New("product category is required")
	}
	if !p.BasePrice.IsPositive() {
		return errors.New("base price must be positive")
	}
	if p.DiscountActive {
		if p.DiscountPrice == nil || !p.DiscountPrice.IsPositive() {
			return errors.New("active discount requires a positive discount price")
		}
		if *p.DiscountPrice >= p.BasePrice {
			return errors.New("discount price must be below base price")
		}
	}
	if p.PurityPercentage < 0 || p.PurityPercentage > 100 {
		return errors.New("purity percentage must be between 0 and 100")
	}
	if p.StockQuantity < 0 {
		return errors.New("stock quantity cannot be negative")
	}
	return nil
}

func (s *Service) validateVariation(v Variation) error {
	if strings.TrimSpace(v.Name) == "" {
		return errors.New("variation name is required")
	}
	if !v.Price.IsPositive() {
		return errors.New("variation price must be positive")
	}
	if v.StockQuantity < 0 {
		return errors.New("variation stock cannot be negative")
	}
	return nil
}

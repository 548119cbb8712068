package categories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

func (s *Service) validate(c Category) error {
	if err := shared.ValidateKey(c.ID); err != nil {
		return fmt.Errorf("category ID %q: %w", c.ID, err)
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("category name is required")
	}
	return nil
}

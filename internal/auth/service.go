package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

// Authenticator verifies admin credentials. The handler depends on this
// interface so credential storage can be swapped without touching HTTP code.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*User, error)
}

// Service wraps authentication business rules.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate validates email/password credentials. Every failure collapses
// into ErrInvalidCredentials so the response never leaks which part failed.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	return user, nil
}

var _ Authenticator = (*Service)(nil)

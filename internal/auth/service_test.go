package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

type mockRepo struct {
	users map[string]*User
}

func (m *mockRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return user, nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse-battery"), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now().UTC()
	return NewService(&mockRepo{users: map[string]*User{
		"admin@peptidesource.ph": {
			ID:           "u1",
			Email:        "admin@peptidesource.ph",
			PasswordHash: string(hash),
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		"former@peptidesource.ph": {
			ID:           "u2",
			Email:        "former@peptidesource.ph",
			PasswordHash: string(hash),
			IsActive:     false,
		},
	}})
}

func TestAuthenticate(t *testing.T) {
	service := newTestService(t)
	user, err := service.Authenticate(context.Background(), "admin@peptidesource.ph", "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	service := newTestService(t)
	_, err := service.Authenticate(context.Background(), "admin@peptidesource.ph", "wrong")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	service := newTestService(t)
	_, err := service.Authenticate(context.Background(), "nobody@peptidesource.ph", "correct-horse-battery")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	service := newTestService(t)
	_, err := service.Authenticate(context.Background(), "former@peptidesource.ph", "correct-horse-battery")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

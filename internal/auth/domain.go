package auth

import "time"

// User is an admin account. Buyers never log in; only the shop staff do.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package ports

import (
	"context"
	"time"

	"github.com/authbase/user-service/internal/core/domain"
)

// RegisterInput carries a candidate profile into the registration operation.
// Password is plaintext here and must never travel further than the hash call.
type RegisterInput struct {
	Name         string
	Email        string
	MobileNumber string
	DateOfBirth  time.Time
	Password     string
}

type AuthService interface {
	// Register validates uniqueness, hashes the password and persists a new
	// user. It returns nothing on success: the caller must log in separately.
	Register(ctx context.Context, in RegisterInput) error

	// Login authenticates by email (preferred) or phone number and returns a
	// signed bearer token on success.
	Login(ctx context.Context, email, phoneNumber, password string) (string, error)

	// Profile returns the account matching an authenticated email claim.
	Profile(ctx context.Context, email string) (*domain.User, error)
}

package ports

import (
	"context"

	"github.com/authbase/user-service/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
//
// Create must fail with domain.ErrDuplicateUser when the store's uniqueness
// constraints (email, mobile number) reject the insert; lookups must fail
// with domain.ErrUserNotFound when no record matches.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByPhone(ctx context.Context, mobileNumber string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

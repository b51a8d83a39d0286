package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/authbase/user-service/internal/core/domain"
	"github.com/authbase/user-service/internal/core/ports"
	"github.com/authbase/user-service/internal/token"
)

// AuthService implements registration and login on top of a user repository
// and a token issuer.
type AuthService struct {
	repo   ports.UserRepository
	issuer *token.Issuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer *token.Issuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, log: log}
}

// Register validates email uniqueness, hashes the password and persists the
// new account.
//
// The pre-check covers email only. A duplicate mobile number passes the
// pre-check and is rejected by the storage constraint instead, surfacing as
// domain.ErrDuplicateUser — same as an email race between two concurrent
// registrations.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) error {
	_, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		s.log.Warn().Str("email", in.Email).Msg("registration rejected: email already exists")
		return domain.ErrEmailExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return fmt.Errorf("register: lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		MobileNumber: in.MobileNumber,
		DateOfBirth:  in.DateOfBirth,
		PasswordHash: string(hash),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			s.log.Error().Str("email", in.Email).Msg("uniqueness violation during insert")
			return domain.ErrDuplicateUser
		}
		return fmt.Errorf("register: insert user: %w", err)
	}

	s.log.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return nil
}

// Login authenticates a user and returns a signed bearer token. Email takes
// precedence when both identifiers are supplied; the phone number is ignored.
func (s *AuthService) Login(ctx context.Context, email, phoneNumber, password string) (string, error) {
	if email == "" && phoneNumber == "" {
		return "", domain.ErrMissingIdentifier
	}

	var (
		user *domain.User
		err  error
	)
	if email != "" {
		user, err = s.repo.FindByEmail(ctx, email)
	} else {
		user, err = s.repo.FindByPhone(ctx, phoneNumber)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("login: lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Warn().Int64("user_id", user.ID).Msg("login rejected: password mismatch")
		return "", domain.ErrInvalidCredentials
	}

	tok, err := s.issuer.Issue(user, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("login: issue token: %w", err)
	}
	return tok, nil
}

// Profile returns the account behind an authenticated email claim.
func (s *AuthService) Profile(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("profile: lookup user: %w", err)
	}
	return user, nil
}

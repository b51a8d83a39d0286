package domain

import (
	"errors"
	"time"
)

// User is the sole persisted entity: one registered account.
// The ID is assigned by the store on insert. PasswordHash only ever holds
// the output of the one-way hash, never a plaintext password.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobile_number"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	PasswordHash string    `json:"-"`
}

var ErrEmailExists = errors.New("a user with this email already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingIdentifier = errors.New("email or phone number must be provided")

// ErrDuplicateUser signals a storage-level uniqueness violation that slipped
// past the registration pre-check (a concurrent registration with the same
// email, or any duplicate mobile number — the pre-check only covers email).
var ErrDuplicateUser = errors.New("user violates a uniqueness constraint")

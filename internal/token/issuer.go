// Package token issues and verifies the signed bearer tokens returned by a
// successful login. A token is a pure function of (user, current time) plus
// the process-wide secret and algorithm loaded once at startup.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/authbase/user-service/internal/core/domain"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// signingMethods lists the HMAC algorithms an operator may configure.
var signingMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// Claims is the claim set encoded into every token.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a fixed secret and algorithm.
type Issuer struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewIssuer validates the signing configuration up front so a missing secret
// or unknown algorithm aborts startup instead of silently producing weak
// tokens. An ttl <= 0 falls back to DefaultTTL.
func NewIssuer(secret, algorithm string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is not set")
	}
	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("token: unsupported signing algorithm %q", algorithm)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), method: method, ttl: ttl}, nil
}

// Issue produces a signed token for user, expiring at now + ttl.
func (i *Issuer) Issue(user *domain.User, now time.Time) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	t := jwt.NewWithClaims(i.method, claims)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Parse verifies a raw token string and returns its claims. Tokens signed
// with a different algorithm than the configured one are rejected outright.
func (i *Issuer) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != i.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

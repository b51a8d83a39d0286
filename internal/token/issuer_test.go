package token

import (
	"testing"
	"time"

	"github.com/authbase/user-service/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:           42,
		Name:         "A",
		Email:        "a@x.com",
		MobileNumber: "+10000000001",
		DateOfBirth:  time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		PasswordHash: "$2a$10$notarealhash",
	}
}

func TestNewIssuer_MissingSecret(t *testing.T) {
	if _, err := NewIssuer("", "HS256", 0); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestNewIssuer_UnknownAlgorithm(t *testing.T) {
	for _, alg := range []string{"", "none", "RS256", "hs256"} {
		if _, err := NewIssuer("secret", alg, 0); err == nil {
			t.Fatalf("expected error for algorithm %q", alg)
		}
	}
}

func TestIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewIssuer("secret", "HS256", 0)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}

	now := time.Now().UTC()
	tok, err := issuer.Issue(testUser(), now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := issuer.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("unexpected email claim: %s", claims.Email)
	}

	// Default TTL: expiry must sit at issue time + 24h (second precision).
	wantExp := now.Add(24 * time.Hour)
	gotExp := claims.ExpiresAt.Time
	if d := gotExp.Sub(wantExp); d < -2*time.Second || d > 2*time.Second {
		t.Fatalf("expected expiry ~%v, got %v", wantExp, gotExp)
	}
}

func TestIssuer_RejectsWrongSecret(t *testing.T) {
	a, _ := NewIssuer("secret-a", "HS256", 0)
	b, _ := NewIssuer("secret-b", "HS256", 0)

	tok, err := a.Issue(testUser(), time.Now().UTC())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := b.Parse(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_RejectsWrongAlgorithm(t *testing.T) {
	hs256, _ := NewIssuer("secret", "HS256", 0)
	hs512, _ := NewIssuer("secret", "HS512", 0)

	tok, err := hs512.Issue(testUser(), time.Now().UTC())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := hs256.Parse(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for foreign algorithm, got %v", err)
	}
}

func TestIssuer_RejectsExpiredToken(t *testing.T) {
	issuer, _ := NewIssuer("secret", "HS256", time.Nanosecond)

	tok, err := issuer.Issue(testUser(), time.Now().UTC().Add(-time.Minute))
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := issuer.Parse(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

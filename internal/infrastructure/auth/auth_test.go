package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dukaanhq/dukaan/internal/domain"
)

func TestJWTManagerIssueAndVerify(t *testing.T) {
	m := NewJWTManager("test-secret")

	token, err := m.Issue("user-1", "admin", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	userID, role, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	if userID != "user-1" || role != "admin" {
		t.Fatalf("unexpected claims: userID=%q role=%q", userID, role)
	}
}

func TestJWTManagerRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret")

	token, err := m.Issue("user-1", "staff", -time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, _, err := m.Verify(token); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("expected expired token error, got %v", err)
	}
}

func TestJWTManagerRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a").Issue("user-1", "staff", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, _, err := NewJWTManager("secret-b").Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTManagerRejectsGarbage(t *testing.T) {
	if _, _, err := NewJWTManager("test-secret").Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher()

	hashed, err := h.Hash("Sup3rSecret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if hashed == "Sup3rSecret" {
		t.Fatalf("expected hash to differ from password")
	}

	if err := h.Compare(hashed, "Sup3rSecret"); err != nil {
		t.Fatalf("expected matching password to verify: %v", err)
	}

	if err := h.Compare(hashed, "WrongPass1"); err == nil {
		t.Fatalf("expected mismatch error for wrong password")
	}
}

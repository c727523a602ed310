package security

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	if _, err := NewJWTManager("", time.Hour); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestJWTSignAndParseRoundTrip(t *testing.T) {
	mgr, err := NewJWTManager(testSecret, 24*time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	token, err := mgr.Sign(7, "Ana", "Silva", "admin")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := mgr.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 7 || claims.FirstName != "Ana" || claims.LastName != "Silva" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 23*time.Hour || remaining > 24*time.Hour {
		t.Fatalf("expected expiry roughly 24h out, got %v", remaining)
	}
}

func TestJWTParseRejectsTamperedToken(t *testing.T) {
	mgr, err := NewJWTManager(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	token, err := mgr.Sign(1, "A", "B", "user")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if _, err := mgr.Parse(tampered); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestJWTParseRejectsOtherSecret(t *testing.T) {
	a, _ := NewJWTManager(testSecret, time.Hour)
	b, _ := NewJWTManager("ffffffffffffffffffffffffffffffff", time.Hour)

	token, err := a.Sign(1, "A", "B", "user")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := b.Parse(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

package auth_test

import (
	"testing"
	"time"

	"github.com/dalemusser/campdir/internal/app/system/auth"
	"go.uber.org/zap"
)

const testSecret = "test-secret-0123456789"

func newManager(t *testing.T, expiry time.Duration) *auth.Manager {
	t.Helper()
	m, err := auth.NewManager(testSecret, expiry, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return m
}

func TestIssueAndParseToken(t *testing.T) {
	m := newManager(t, time.Hour)

	in := auth.TokenUser{
		ID:    "64f000000000000000000001",
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Role:  "publisher",
	}

	token, expiresAt, err := m.IssueToken(in)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if time.Until(expiresAt) <= 0 {
		t.Error("expected a future expiry")
	}

	out, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if *out != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", *out, in)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newManager(t, time.Hour)
	if _, err := m.ParseToken("not.a.token"); err == nil {
		t.Error("expected error for garbage token")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newManager(t, time.Hour)
	other, err := auth.NewManager("a-different-secret-string", time.Hour, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	token, _, err := m.IssueToken(auth.TokenUser{ID: "64f000000000000000000001", Role: "user"})
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if _, err := other.ParseToken(token); err == nil {
		t.Error("expected error when verifying with a different secret")
	}
}

func TestIssueToken_DefaultExpiry(t *testing.T) {
	// A zero expiry falls back to 24h.
	m := newManager(t, 0)

	_, expiresAt, err := m.IssueToken(auth.TokenUser{ID: "64f000000000000000000001", Role: "user"})
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	until := time.Until(expiresAt)
	if until < 23*time.Hour || until > 25*time.Hour {
		t.Errorf("expected ~24h expiry, got %v", until)
	}
}

func TestNewManager_EmptySecret(t *testing.T) {
	if _, err := auth.NewManager("", time.Hour, zap.NewNop()); err == nil {
		t.Error("expected error for empty secret")
	}
}

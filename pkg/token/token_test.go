package token

import (
	"testing"
	"time"
)

const secret = "test-secret"

func TestSignParse_RoundTrip(t *testing.T) {
	raw, err := Sign(secret, "principal-1", RoleStudent, time.Hour)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	claims, err := Parse(secret, raw)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if claims.ID != "principal-1" {
		t.Errorf("ID = %q, want %q", claims.ID, "principal-1")
	}
	if claims.Role != RoleStudent {
		t.Errorf("Role = %q, want %q", claims.Role, RoleStudent)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	raw, err := Sign(secret, "principal-1", RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	if _, err := Parse("other-secret", raw); err != ErrInvalid {
		t.Errorf("Parse with wrong secret: err = %v, want ErrInvalid", err)
	}
}

func TestParse_Expired(t *testing.T) {
	raw, err := Sign(secret, "principal-1", RoleStudent, -time.Minute)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	if _, err := Parse(secret, raw); err != ErrInvalid {
		t.Errorf("Parse of expired token: err = %v, want ErrInvalid", err)
	}
}

func TestParse_Garbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := Parse(secret, raw); err != ErrInvalid {
			t.Errorf("Parse(%q): err = %v, want ErrInvalid", raw, err)
		}
	}
}

func TestParse_UnknownRole(t *testing.T) {
	raw, err := Sign(secret, "principal-1", "superuser", time.Hour)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	if _, err := Parse(secret, raw); err != ErrInvalid {
		t.Errorf("Parse with unknown role: err = %v, want ErrInvalid", err)
	}
}

package hash

import (
	"strings"
	"testing"
)

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := Password("secret123")
	if err != nil {
		t.Fatalf("Password() error: %v", err)
	}
	if hashed == "secret123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Errorf("expected bcrypt hash, got %q", hashed)
	}
	if !CheckPassword(hashed, "secret123") {
		t.Error("correct password rejected")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hashed, err := Password("secret123")
	if err != nil {
		t.Fatalf("Password() error: %v", err)
	}
	if CheckPassword(hashed, "secret124") {
		t.Error("wrong password accepted")
	}
	if CheckPassword(hashed, "") {
		t.Error("empty password accepted")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "secret123") {
		t.Error("malformed hash accepted")
	}
}

func TestPassword_Salted(t *testing.T) {
	a, err := Password("secret123")
	if err != nil {
		t.Fatalf("Password() error: %v", err)
	}
	b, err := Password("secret123")
	if err != nil {
		t.Fatalf("Password() error: %v", err)
	}
	// bcrypt embeds a random salt, so two hashes of the same input differ
	if a == b {
		t.Error("expected distinct salted hashes")
	}
}

func TestSHA256Hex(t *testing.T) {
	// Known SHA256 of "hello"
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	got := SHA256Hex("hello")
	if got != want {
		t.Errorf("SHA256Hex(\"hello\") = %s, want %s", got, want)
	}
}

func TestIPLogPrefix(t *testing.T) {
	p := IPLogPrefix("203.0.113.7")
	if len(p) != 12 {
		t.Errorf("prefix length = %d, want 12", len(p))
	}
	if p != IPLogPrefix("203.0.113.7") {
		t.Error("prefix should be deterministic")
	}
	if p == IPLogPrefix("203.0.113.8") {
		t.Error("different IPs should produce different prefixes")
	}
}

package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Roles embedded in issued tokens.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

var (
	ErrInvalid = errors.New("invalid token")
)

// Claims is the decoded identity carried by a bearer token.
type Claims struct {
	ID   string
	Role string
}

// Sign issues an HMAC-signed JWT for the given principal id and role.
func Sign(secret, id, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   id,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})
	return t.SignedString([]byte(secret))
}

// Parse verifies an HMAC-signed JWT and extracts the principal claims.
// Expired, malformed, or wrongly-signed tokens all return ErrInvalid.
func Parse(secret, raw string) (*Claims, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalid
	}

	mc, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalid
	}

	id, _ := mc["id"].(string)
	role, _ := mc["role"].(string)
	if id == "" || (role != RoleAdmin && role != RoleStudent) {
		return nil, ErrInvalid
	}

	return &Claims{ID: id, Role: role}, nil
}

// internal/app/system/auth/token.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager issues and verifies HS256 Bearer tokens.
type Manager struct {
	secret []byte
	expiry time.Duration
	log    *zap.Logger
}

var (
	ErrEmptySecret  = errors.New("token signing secret must not be empty")
	ErrInvalidToken = errors.New("invalid token")
)

// NewManager constructs a token Manager. The secret must be non-empty; a
// zero expiry falls back to 24h.
func NewManager(secret string, expiry time.Duration, logger *zap.Logger) (*Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), expiry: expiry, log: logger}, nil
}

// IssueToken signs a token for the given user. Claims: sub (user id hex),
// name, email, role, jti, iat, exp.
func (m *Manager) IssueToken(u TokenUser) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(m.expiry)
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseToken verifies a raw token string and returns the user it carries.
func (m *Manager) ParseToken(raw string) (*TokenUser, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	u := &TokenUser{
		ID:    claimString(claims, "sub"),
		Name:  claimString(claims, "name"),
		Email: claimString(claims, "email"),
		Role:  claimString(claims, "role"),
	}
	if u.ID == "" {
		return nil, ErrInvalidToken
	}
	return u, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}

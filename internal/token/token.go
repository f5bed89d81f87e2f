// Package token issues and verifies the signed access tokens carried
// on privileged requests.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"farmgate/internal/domain"
)

// ErrInvalidToken indicates the token could not be parsed, failed
// signature verification, or has expired.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity payload embedded in an access token.
type Claims struct {
	AccountID string      `json:"id"`
	Role      domain.Role `json:"role"`
	Username  string      `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with an HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for the account, expiring after the
// manager's TTL.
func (m *Manager) Issue(a domain.Account) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: a.ID,
		Role:      a.Role,
		Username:  a.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a token string and returns its claims.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.Role.Valid() || claims.AccountID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TTLSeconds exposes the token lifetime in seconds.
func (m *Manager) TTLSeconds() int {
	return int(m.ttl.Seconds())
}

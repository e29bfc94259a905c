package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager signs and validates the portal's bearer tokens.
// Tokens are stateless: everything the guard needs is in the claims,
// and expiry is the only invalidation path.
type TokenManager struct {
	Secret []byte
	TTL    time.Duration
}

var defaultManager *TokenManager

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	m := &TokenManager{Secret: []byte(secret), TTL: ttl}
	defaultManager = m
	return m
}

// DefaultTokenManager returns the last constructed TokenManager (used for auto-wiring routes)
func DefaultTokenManager() *TokenManager { return defaultManager }

type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

func (m *TokenManager) Generate(userID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.TTL)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Parse validates signature and expiry. Callers that need to tell an
// expired token apart from a mis-signed one can errors.Is against
// jwt.ErrTokenExpired.
func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

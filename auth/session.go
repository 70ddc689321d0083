// Package auth issues and validates the signed session cookies used by the
// login flow. A session carries the user's role and price tier so handlers
// never hit the users table on every request.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when the token is invalid.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// SessionClaims are the custom claims carried in a session token
type SessionClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	PriceTier string `json:"price_tier"`
	jwt.RegisteredClaims
}

// SessionManager signs and validates session tokens
type SessionManager struct {
	secret   []byte
	lifetime time.Duration
}

// NewSessionManager creates a SessionManager with the given HMAC secret and
// session lifetime
func NewSessionManager(secret string, lifetime time.Duration) *SessionManager {
	return &SessionManager{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// Issue signs a new session token for the given user
func (m *SessionManager) Issue(userID, email, role, tier string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		PriceTier: tier,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "syrincal-system",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses a session token and returns its claims if valid
func (m *SessionManager) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Lifetime returns the configured session lifetime
func (m *SessionManager) Lifetime() time.Duration {
	return m.lifetime
}

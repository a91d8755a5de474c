package utils

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload of the signed bearer token. The role is
// embedded so authorization checks need no storage round-trip; it goes
// stale until the user requests a fresh token.
type TokenClaims struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Superuser bool   `json:"superuser"`
	Active    bool   `json:"active"`
	jwt.RegisteredClaims
}

// GenerateToken mints an HS256 bearer token for the given identity.
func GenerateToken(userID, username, role string, superuser, active bool, secret string, expiryHours int) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is not configured")
	}
	if expiryHours <= 0 {
		expiryHours = 24
	}

	now := time.Now()
	claims := TokenClaims{
		UserID:    userID,
		Username:  username,
		Role:      role,
		Superuser: superuser,
		Active:    active,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiryHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token signature and expiry and returns its claims.
func ParseToken(tokenStr, secret string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer      = "sole-and-ankle-catalog"
	RoleAdmin   = "ADMIN"
	TokenAccess = "ACCESS"
)

type Claims struct {
	AdminID   int    `json:"admin_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies admin access tokens.
type TokenManager struct {
	key []byte
	ttl time.Duration
}

// NewTokenManager validates the signing secret and returns a manager.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &TokenManager{key: []byte(secret), ttl: ttl}, nil
}

// GenerateAccessToken creates a short-lived access token for the catalog admin API.
func (m *TokenManager) GenerateAccessToken(adminID int) (string, error) {
	claims := &Claims{
		AdminID:   adminID,
		Role:      RoleAdmin,
		TokenType: TokenAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

// ValidateToken parses and verifies JWT claims and signature integrity.
func (m *TokenManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

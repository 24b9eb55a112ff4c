package utils

import (
	"errors"
	"github.com/golang-jwt/jwt/v5"
	"os"
)

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// jwtKey reads the secret per call rather than at package init, so a
// value loaded from .env by godotenv in main is picked up.
func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// ValidateToken checks a bearer token issued by the identity service.
// This service only validates; it never mints tokens.
func ValidateToken(tokenString string) (*Claims, error) {
	key := jwtKey()
	if len(key) == 0 {
		return nil, errors.New("JWT_SECRET is not configured")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

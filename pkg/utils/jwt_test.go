package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func adminClaims() Claims {
	return Claims{
		UserID: "7f0f9a1e-9a43-4a24-8a60-2f8f64a0a111",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

// The secret is read per validation, not at package init, so a value
// that only appears after startup (e.g. loaded from .env) still works.
func TestValidateToken_ReadsSecretAtCallTime(t *testing.T) {
	t.Setenv("JWT_SECRET", "call-time-secret")

	signed := signTestToken(t, "call-time-secret", adminClaims())

	claims, err := ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateToken_MissingSecretRejectsEverything(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	// Even a token signed with an empty key must not validate.
	signed := signTestToken(t, "", adminClaims())

	_, err := ValidateToken(signed)
	require.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "right-secret")

	signed := signTestToken(t, "wrong-secret", adminClaims())

	_, err := ValidateToken(signed)
	require.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "call-time-secret")

	claims := adminClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	signed := signTestToken(t, "call-time-secret", claims)

	_, err := ValidateToken(signed)
	require.Error(t, err)
}

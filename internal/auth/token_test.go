package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseSession_Success(t *testing.T) {
	sut := NewVerifier("test-secret")
	signed := signToken(t, "test-secret", &Claims{
		FirstName: "Ayesha",
		LastName:  "Rahman",
		Email:     "ayesha@example.com",
		Phone:     "01711000000",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := sut.ParseSession(signed)
	require.NoError(t, err)
	assert.Equal(t, "Ayesha", claims.FirstName)
	assert.Equal(t, "ayesha@example.com", claims.Email)
}

func TestParseSession_WrongSecret(t *testing.T) {
	sut := NewVerifier("test-secret")
	signed := signToken(t, "other-secret", &Claims{Email: "a@b.c"})

	_, err := sut.ParseSession(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSession_Expired(t *testing.T) {
	sut := NewVerifier("test-secret")
	signed := signToken(t, "test-secret", &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := sut.ParseSession(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestBillingDefaults(t *testing.T) {
	defaults := BillingDefaults(&Claims{
		FirstName: "Ayesha",
		LastName:  "Rahman",
		Email:     "ayesha@example.com",
		Phone:     "01711000000",
	})

	assert.Equal(t, "Ayesha", defaults.FirstName)
	assert.Equal(t, "Rahman", defaults.LastName)
	assert.Equal(t, "ayesha@example.com", defaults.Email)
	assert.Empty(t, defaults.AddressLine1, "address fields start blank")
}

func TestBillingDefaults_Anonymous(t *testing.T) {
	defaults := BillingDefaults(nil)
	assert.Empty(t, defaults.FirstName)
	assert.Empty(t, defaults.Email)
}

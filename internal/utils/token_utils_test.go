package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocklane/inventory_backend/internal/utils"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestParseAndValidateJWT_RoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("user-42", testSecret, time.Hour, "inventory-backend")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "inventory-backend", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-42", testSecret, time.Hour, "inventory-backend")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "a-different-secret")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-42", testSecret, -time.Minute, "inventory-backend")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseAndValidateJWT_RejectsUnsignedToken(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

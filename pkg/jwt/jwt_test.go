package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := jwt.NewTokenManager("secret", "mentorhub", 1)

	token, err := tm.GenerateToken("user-1", "Dana", "dana@example.com")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Dana", claims.FirstName)
	assert.Equal(t, "dana@example.com", claims.Email)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, time.Hour, tm.GetExpirationTime())
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	token, err := jwt.NewTokenManager("secret", "mentorhub", 1).GenerateToken("u", "Dana", "")
	require.NoError(t, err)

	_, err = jwt.NewTokenManager("other", "mentorhub", 1).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestTokenManager_RejectsWrongIssuer(t *testing.T) {
	token, err := jwt.NewTokenManager("secret", "someone-else", 1).GenerateToken("u", "Dana", "")
	require.NoError(t, err)

	_, err = jwt.NewTokenManager("secret", "mentorhub", 1).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	claims := jwt.RequesterClaims{
		FirstName: "Dana",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
			Issuer:    "mentorhub",
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = jwt.NewTokenManager("secret", "mentorhub", 1).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestTimingSafeCompare(t *testing.T) {
	assert.True(t, jwt.TimingSafeCompare("abc", "abc"))
	assert.False(t, jwt.TimingSafeCompare("abc", "abd"))
	assert.False(t, jwt.TimingSafeCompare("abc", ""))
}

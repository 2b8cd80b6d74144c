package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/hisab_kitab/internal/apperrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "236.00", FormatMoney(decimal.NewFromInt(236)))
	assert.Equal(t, "0.00", FormatMoney(decimal.Zero))
	assert.Equal(t, "1.97", FormatMoney(decimal.RequireFromString("1.97")))
}

func TestFormatUnitPrice(t *testing.T) {
	tests := map[string]string{
		"100":      "100.00",
		"100.0000": "100.00",
		"12.5":     "12.50",
		"0.125":    "0.125",
		"0.1250":   "0.125",
		"0.1255":   "0.1255",
		"85.0001":  "85.0001",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatUnitPrice(decimal.RequireFromString(in)), in)
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "18", FormatRate(decimal.RequireFromString("18.00")))
	assert.Equal(t, "2.5", FormatRate(decimal.RequireFromString("2.5")))
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("battery staple", hash))

	_, err = HashPassword(strings.Repeat("x", MaxPasswordBytes+1), bcrypt.MinCost)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = HashPassword("correct horse", bcrypt.MaxCost+1)
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Minute, "hisab-kitab")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret", "hisab-kitab")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "hisab-kitab", claims.Issuer)

	_, err = ParseAndValidateJWT(token, "wrong", "hisab-kitab")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ParseAndValidateJWT(token, "secret", "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestParseAndValidateJWT_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "hisab-kitab",
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(hs512, "secret", "hisab-kitab")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(unsigned, "secret", "hisab-kitab")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_RequiresSubjectAndExpiry(t *testing.T) {
	noSubject, err := GenerateJWT("", "secret", time.Minute, "hisab-kitab")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(noSubject, "secret", "hisab-kitab")
	assert.ErrorIs(t, err, ErrMissingSubject)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: "hisab-kitab", Subject: "user-1"}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(noExpiry, "secret", "hisab-kitab")
	assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
}

package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenIssueValidate(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := svc.Validate(token)
	require.NoError(t, err)
	require.Equal(t, 42, id)
}

func TestTokenValidateRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret")

	for _, bad := range []string{"", "not.a.token", "a.b.c"} {
		_, err := svc.Validate(bad)
		require.ErrorIs(t, err, ErrTokenInvalid)
	}
}

func TestTokenValidateRejectsForeignSignature(t *testing.T) {
	issuer := NewTokenService("secret-a")
	validator := NewTokenService("secret-b")

	token, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = validator.Validate(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenValidateRejectsExpired(t *testing.T) {
	secret := "test-secret"
	svc := NewTokenService(secret)

	claims := &TokenClaims{
		AccountID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = svc.Validate(expired)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenValidateRejectsNoneAlgorithm(t *testing.T) {
	svc := NewTokenService("test-secret")

	claims := &TokenClaims{
		AccountID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(unsigned)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

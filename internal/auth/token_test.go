package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Generate("user-1", "test@example.com", "ADMIN")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestVerifyExpired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Second)

	token, err := svc.Generate("user-2", "expired@example.com", "USER")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)

	ae, ok := AsAuthError(err)
	require.True(t, ok)
	assert.Equal(t, CodeTokenExpired, ae.Code)
}

func TestVerifyMalformed(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	_, err := svc.Verify("invalid.token.here")
	require.Error(t, err)

	ae, ok := AsAuthError(err)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidToken, ae.Code)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("right-secret", time.Hour)
	verifier := NewTokenService("wrong-secret", time.Hour)

	token, err := issuer.Generate("user-3", "u3@example.com", "USER")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)

	ae, ok := AsAuthError(err)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidToken, ae.Code)
}

func TestVerifyReturnsClaimsUnchanged(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Generate("user-4", "u4@example.com", "USER")
	require.NoError(t, err)

	// no implicit renewal: two verifies return identical claims
	first, err := svc.Verify(token)
	require.NoError(t, err)
	second, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, first.ExpiresAt.Unix(), second.ExpiresAt.Unix())
}

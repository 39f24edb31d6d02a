package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "admin", true)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, "access", claims["type"])
}

func TestDecode_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	token, _, err := issuer.GenerateAccessToken("user-1", "admin", false)
	require.NoError(t, err)

	_, err = verifier.JWTAuth().Decode(token)
	assert.Error(t, err)
}

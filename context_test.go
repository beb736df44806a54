package jwtkit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeinix-zz/jwtkit"
)

func TestSetToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	token := "test.jwt.token"

	newCtx := jwtkit.SetToken(ctx, token)

	require.NotNil(t, newCtx, "Context should not be nil")
	assert.NotEqual(t, ctx, newCtx, "New context should be different from original")

	retrievedToken, ok := jwtkit.GetToken(newCtx)
	assert.True(t, ok, "Should be able to retrieve token")
	assert.Equal(t, token, retrievedToken, "Retrieved token should match original")
}

func TestGetToken(t *testing.T) {
	t.Parallel()
	t.Run("TokenExists", func(t *testing.T) {
		ctx := jwtkit.SetToken(context.Background(), "test.jwt.token")

		retrievedToken, ok := jwtkit.GetToken(ctx)

		assert.True(t, ok, "Should return true when token exists")
		assert.Equal(t, "test.jwt.token", retrievedToken)
	})

	t.Run("TokenDoesNotExist", func(t *testing.T) {
		retrievedToken, ok := jwtkit.GetToken(context.Background())

		assert.False(t, ok, "Should return false when token does not exist")
		assert.Empty(t, retrievedToken)
	})
}

func TestSetClaims(t *testing.T) {
	t.Parallel()
	claims := jwtkit.Claims{
		PID: "user123",
		Exp: 1700000000,
		Extra: map[string]any{
			"role": "admin",
		},
	}

	ctx := jwtkit.SetClaims(context.Background(), claims)

	retrieved, ok := jwtkit.GetClaims(ctx)
	require.True(t, ok, "Should be able to retrieve claims")
	assert.Equal(t, claims, retrieved)
}

func TestGetClaims(t *testing.T) {
	t.Parallel()
	t.Run("ClaimsExist", func(t *testing.T) {
		claims := jwtkit.Claims{PID: "user123", Exp: 1700000000}
		ctx := jwtkit.SetClaims(context.Background(), claims)

		retrieved, ok := jwtkit.GetClaims(ctx)

		assert.True(t, ok)
		assert.Equal(t, claims, retrieved)
	})

	t.Run("ClaimsDoNotExist", func(t *testing.T) {
		retrieved, ok := jwtkit.GetClaims(context.Background())

		assert.False(t, ok, "Should return false when claims do not exist")
		assert.Zero(t, retrieved)
	})
}

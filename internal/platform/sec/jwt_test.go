// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/learnhub/internal/platform/sec"
)

func newKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

/*
TestTokenService_RoundTrip signs a token and verifies it with the public half only.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	key := newKey(t)

	issuer, err := sec.NewTokenService(key, nil, "learnhub.app")
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken("user-1", "ada@example.com", time.Minute)
	require.NoError(t, err)

	verifier, err := sec.NewTokenService(nil, &key.PublicKey, "learnhub.app")
	require.NoError(t, err)

	claims, err := verifier.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
}

/*
TestTokenService_Rejections covers the verification failure branches.
*/
func TestTokenService_Rejections(t *testing.T) {
	key := newKey(t)
	service, err := sec.NewTokenService(key, nil, "learnhub.app")
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		token, err := service.GenerateAccessToken("user-1", "", -time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("foreign_issuer", func(t *testing.T) {
		other, err := sec.NewTokenService(key, nil, "someone-else")
		require.NoError(t, err)
		token, err := other.GenerateAccessToken("user-1", "", time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("foreign_key", func(t *testing.T) {
		other, err := sec.NewTokenService(newKey(t), nil, "learnhub.app")
		require.NoError(t, err)
		token, err := other.GenerateAccessToken("user-1", "", time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.VerifyToken("not-a-jwt")
		assert.Error(t, err)
	})
}

/*
TestTokenService_VerifyOnly ensures a public-key service cannot mint tokens.
*/
func TestTokenService_VerifyOnly(t *testing.T) {
	key := newKey(t)
	verifier, err := sec.NewTokenService(nil, &key.PublicKey, "learnhub.app")
	require.NoError(t, err)

	_, err = verifier.GenerateAccessToken("user-1", "", time.Minute)
	assert.Error(t, err)

	_, err = sec.NewTokenService(nil, nil, "learnhub.app")
	assert.Error(t, err)
}

func TestUserRole_IsAdmin(t *testing.T) {
	assert.True(t, sec.RoleAdmin.IsAdmin())
	assert.False(t, sec.RoleModerator.IsAdmin())
	assert.False(t, sec.RoleMember.IsAdmin())
	assert.False(t, sec.UserRole("Admin").IsAdmin())
	assert.False(t, sec.UserRole("").IsAdmin())
}

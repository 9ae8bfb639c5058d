package services

import (
	"context"
	"testing"
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBlacklist connects to the local Redis used for integration tests.
// Tests are skipped when no instance is reachable.
func newTestBlacklist(t *testing.T) *RedisTokenBlacklist {
	t.Helper()

	blacklist, err := NewTokenBlacklist("redis://localhost:6379")
	if err != nil {
		t.Skip("redis not available:", err)
	}
	t.Cleanup(func() { blacklist.Close() })
	return blacklist
}

func TestNilBlacklistPassesEverything(t *testing.T) {
	initTestJWT(t)
	TokenBlacklist = nil

	token, err := GenerateToken("user-123")
	require.NoError(t, err)

	// Without a configured store, revocation is a no-op and nothing reads
	// as revoked; tokens only die by expiry.
	require.NoError(t, BlacklistToken(context.Background(), token))
	assert.False(t, IsTokenBlacklisted(context.Background(), token))
}

func TestBlacklistRoundTrip(t *testing.T) {
	initTestJWT(t)
	blacklist := newTestBlacklist(t)
	TokenBlacklist = blacklist
	t.Cleanup(func() { TokenBlacklist = nil })

	token, err := GenerateToken("user-123")
	require.NoError(t, err)

	assert.False(t, IsTokenBlacklisted(context.Background(), token))

	require.NoError(t, BlacklistToken(context.Background(), token))
	assert.True(t, IsTokenBlacklisted(context.Background(), token))
}

func TestBlacklistExpiredTokenNoop(t *testing.T) {
	initTestJWT(t)
	blacklist := newTestBlacklist(t)
	TokenBlacklist = blacklist
	t.Cleanup(func() { TokenBlacklist = nil })

	claims := jwt.MapClaims{
		"user_id": "user-123",
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(utils.JWTSecretKey))
	require.NoError(t, err)

	// An expired token cannot be presented again, so nothing is stored.
	require.NoError(t, BlacklistToken(context.Background(), expired))
	assert.False(t, IsTokenBlacklisted(context.Background(), expired))
}

package services

import (
	"context"
	"fmt"
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// TokenRevocationStore records revoked tokens until their natural expiry.
type TokenRevocationStore interface {
	BlacklistToken(ctx context.Context, tokenString string) error
	IsTokenBlacklisted(ctx context.Context, tokenString string) (bool, error)
}

type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the process-wide revocation store. It stays nil when
// REDIS_URL is not configured, in which case tokens are only invalidated by
// natural expiry.
var TokenBlacklist TokenRevocationStore

// NewTokenBlacklist creates a Redis-backed token blacklist.
func NewTokenBlacklist(redisURL string) (*RedisTokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisTokenBlacklist{Client: client}, nil
}

// BlacklistToken revokes a token until its natural expiry. Already-expired
// tokens are a no-op.
func BlacklistToken(ctx context.Context, tokenString string) error {
	if TokenBlacklist == nil {
		return nil
	}
	return TokenBlacklist.BlacklistToken(ctx, tokenString)
}

// BlacklistToken stores the token with a TTL matching its remaining lifetime.
// Already-expired or unparsable tokens are a no-op.
func (tb *RedisTokenBlacklist) BlacklistToken(ctx context.Context, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil {
		// An invalid or expired token cannot be presented again, nothing to store.
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("failed to read claims from token")
	}

	expirationTime := time.Now().Add(utils.TokenExpiration)
	if exp, ok := claims["exp"].(float64); ok {
		expirationTime = time.Unix(int64(exp), 0)
	}

	ttl := time.Until(expirationTime)
	if ttl <= 0 {
		return nil
	}

	key := fmt.Sprintf("blacklist:token:%s", tokenString)
	if err := tb.Client.Set(ctx, key, "revoked", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	return nil
}

// IsTokenBlacklisted reports whether a token has been revoked. Without a
// configured blacklist every token is considered live until expiry.
func IsTokenBlacklisted(ctx context.Context, tokenString string) bool {
	if TokenBlacklist == nil {
		return false
	}

	revoked, err := TokenBlacklist.IsTokenBlacklisted(ctx, tokenString)
	if err != nil {
		return false
	}
	return revoked
}

func (tb *RedisTokenBlacklist) IsTokenBlacklisted(ctx context.Context, tokenString string) (bool, error) {
	key := fmt.Sprintf("blacklist:token:%s", tokenString)
	exists, err := tb.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (tb *RedisTokenBlacklist) Close() error {
	return tb.Client.Close()
}

package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:revoked:"

// RevokeToken blacklists token until it would have expired anyway.
func RevokeToken(ctx context.Context, client *redis.Client, token string, ttl time.Duration) error {
	if client == nil {
		return errors.New("token revocation requires a cache client")
	}
	if ttl <= 0 {
		return nil
	}
	if err := client.Set(ctx, AuthCachePrefix+HashToken(token), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether token was revoked. Cache errors count as
// not revoked so an unavailable Redis does not lock every user out.
func IsTokenRevoked(ctx context.Context, client *redis.Client, token string) bool {
	if client == nil {
		return false
	}
	n, err := client.Exists(ctx, AuthCachePrefix+HashToken(token)).Result()
	if err != nil {
		GetLogger().Debug("token revocation lookup failed", zap.Error(err))
		return false
	}
	return n > 0
}

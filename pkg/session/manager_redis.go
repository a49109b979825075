package session

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "revoked:"

// How long a revocation marker outlives the longest-lived provider
// token. After that the token is expired anyway.
const revocationTTL = 30 * 24 * time.Hour

type Cmdable interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ManagerRedis layers a revocation denylist over token verification.
// The identity provider announces revoked sessions via webhook; Check
// rejects any token whose session id has been marked.
type ManagerRedis struct {
	rdb Cmdable
	jwt Manager
}

func NewManagerRedis(rdb Cmdable, jwt Manager) *ManagerRedis {
	return &ManagerRedis{rdb: rdb, jwt: jwt}
}

func (sm *ManagerRedis) Check(ctx context.Context, r *http.Request) (*Claims, error) {
	claims, err := sm.jwt.Check(ctx, r)
	if err != nil {
		return nil, err
	}

	_, err = sm.rdb.Get(ctx, revokedKeyPrefix+claims.SessionID).Result()
	if err == redis.Nil {
		return claims, nil
	}
	if err != nil {
		return nil, err
	}

	return nil, ErrRevoked
}

func (sm *ManagerRedis) Revoke(ctx context.Context, sessionID string) error {
	return sm.rdb.Set(ctx, revokedKeyPrefix+sessionID, 1, revocationTTL).Err()
}

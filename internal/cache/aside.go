package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"newsdesk/internal/observability"

	"github.com/redis/go-redis/v9"
)

const (
	TopicsKey     = "topics:all"
	UserKeyPrefix = "user:%s"
)

const (
	TopicsTTL = 10 * time.Minute
	UserTTL   = 5 * time.Minute
)

func UserKey(username string) string {
	return fmt.Sprintf(UserKeyPrefix, username)
}

// Aside implements the cache-aside pattern: return the cached value for key
// if present, otherwise run load, cache its result under key with the given
// TTL, and leave the result in dest. Cache failures are not fatal; the loader
// result always wins.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, load func() error) error {
	prefix := keyPrefix(key)

	if client != nil {
		raw, err := client.Get(ctx, key).Result()
		if err == nil {
			if unmarshalErr := json.Unmarshal([]byte(raw), dest); unmarshalErr == nil {
				observability.CacheRequests.WithLabelValues(prefix, "hit").Inc()
				return nil
			}
			// Corrupt entry; drop it and reload.
			client.Del(ctx, key)
		} else if err != redis.Nil {
			observability.RedisErrors.WithLabelValues("get").Inc()
		}
	}

	observability.CacheRequests.WithLabelValues(prefix, "miss").Inc()

	if err := load(); err != nil {
		return err
	}

	if client != nil {
		if raw, err := json.Marshal(dest); err == nil {
			client.Set(ctx, key, raw, ttl)
		}
	}
	return nil
}

// Invalidate removes a cached entry. Safe to call without a client.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func keyPrefix(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	appcache "github.com/vistream-io/vistream/internal/application/entitlement"
	"github.com/vistream-io/vistream/internal/domain/entitlement"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

const (
	entitlementKeyPrefix = "entitlement:"
	// entitlementTTLJitter spreads expiry so a fleet of devices resuming
	// at once does not refill the cache in one burst (anti-stampede).
	entitlementTTLJitter = 15 * time.Second
	// absentMarkerTTL is the short TTL for confirmed no-entitlement
	// markers (anti-penetration).
	absentMarkerTTL = 30 * time.Second
	absentMarker    = "_absent"
)

// RedisEntitlementCache implements the entitlement cache on Redis. One
// JSON value per account, or a short-lived marker when resolution
// confirmed the account has no entitlement.
type RedisEntitlementCache struct {
	client  *redis.Client
	baseTTL time.Duration
	logger  logger.Interface
}

// NewRedisEntitlementCache creates a new Redis-based entitlement cache
func NewRedisEntitlementCache(client *redis.Client, baseTTL time.Duration, logger logger.Interface) appcache.Cache {
	return &RedisEntitlementCache{
		client:  client,
		baseTTL: baseTTL,
		logger:  logger,
	}
}

func (c *RedisEntitlementCache) key(accountID uint) string {
	return fmt.Sprintf("%s%d", entitlementKeyPrefix, accountID)
}

func (c *RedisEntitlementCache) ttl() time.Duration {
	jitter := time.Duration(rand.Int63n(int64(entitlementTTLJitter)))
	return c.baseTTL + jitter
}

func (c *RedisEntitlementCache) Get(ctx context.Context, accountID uint) (*appcache.CachedEntitlement, error) {
	data, err := c.client.Get(ctx, c.key(accountID)).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entitlement from cache: %w", err)
	}

	if string(data) == absentMarker {
		return &appcache.CachedEntitlement{Absent: true}, nil
	}

	var ent entitlement.Entitlement
	if err := json.Unmarshal(data, &ent); err != nil {
		// A corrupt entry behaves as a miss; the resolver will overwrite it.
		c.logger.Warnw("discarding corrupt cached entitlement", "error", err, "account_id", accountID)
		return nil, nil
	}

	return &appcache.CachedEntitlement{Entitlement: &ent}, nil
}

func (c *RedisEntitlementCache) Set(ctx context.Context, accountID uint, ent *entitlement.Entitlement) error {
	data, err := json.Marshal(ent)
	if err != nil {
		return fmt.Errorf("failed to marshal entitlement: %w", err)
	}

	if err := c.client.Set(ctx, c.key(accountID), data, c.ttl()).Err(); err != nil {
		return fmt.Errorf("failed to cache entitlement: %w", err)
	}
	return nil
}

func (c *RedisEntitlementCache) SetAbsent(ctx context.Context, accountID uint) error {
	if err := c.client.Set(ctx, c.key(accountID), absentMarker, absentMarkerTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache absent marker: %w", err)
	}
	return nil
}

func (c *RedisEntitlementCache) Invalidate(ctx context.Context, accountID uint) error {
	if err := c.client.Del(ctx, c.key(accountID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached entitlement: %w", err)
	}
	return nil
}

package streamregistry

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vistream-io/vistream/internal/domain/playback"
)

const (
	// streamKeyPrefix is the prefix for all live stream keys
	streamKeyPrefix = "streams:"
)

// admitScript trims lapsed heartbeats, then refreshes an already-live
// member or claims a new one when the scope is under its ceiling. The
// whole trim-count-claim sequence runs as one script so two players
// racing for the last stream serialize inside Redis.
//
// KEYS[1] scope ZSET; ARGV: member, now nanos, window-start nanos,
// ceiling, TTL millis. Returns {admitted, count after the call}.
var admitScript = redis.NewScript(`
local key = KEYS[1]
redis.call('ZREMRANGEBYSCORE', key, 0, ARGV[3])
if redis.call('ZSCORE', key, ARGV[1]) then
    redis.call('ZADD', key, ARGV[2], ARGV[1])
    redis.call('PEXPIRE', key, ARGV[5])
    return {1, redis.call('ZCARD', key)}
end
local count = redis.call('ZCARD', key)
if count < tonumber(ARGV[4]) then
    redis.call('ZADD', key, ARGV[2], ARGV[1])
    redis.call('PEXPIRE', key, ARGV[5])
    return {1, count + 1}
end
return {0, count}
`)

// RedisStreamRegistry tracks live playback heartbeats in one ZSET per
// scope, scored by heartbeat time. A stream is live while its score is
// inside the heartbeat window; lapsed members are trimmed on every call
// and the key expires on its own when a household stops watching.
type RedisStreamRegistry struct {
	client *redis.Client
}

// NewRedisStreamRegistry creates a new redis stream registry
func NewRedisStreamRegistry(client *redis.Client) playback.StreamRegistry {
	return &RedisStreamRegistry{client: client}
}

// buildKey builds the Redis key for a scope's live streams
// Format: streams:{scope_id}
func (r *RedisStreamRegistry) buildKey(scopeID uint) string {
	return fmt.Sprintf("%s%d", streamKeyPrefix, scopeID)
}

// buildMember identifies one stream inside the scope ZSET
// Format: {account_id}:{content_id}
func (r *RedisStreamRegistry) buildMember(accountID, contentID uint) string {
	return fmt.Sprintf("%d:%d", accountID, contentID)
}

func (r *RedisStreamRegistry) Admit(ctx context.Context, scopeID, accountID, contentID uint, ceiling int, window time.Duration, now time.Time) (*playback.StreamAdmitOutcome, error) {
	res, err := admitScript.Run(ctx, r.client,
		[]string{r.buildKey(scopeID)},
		r.buildMember(accountID, contentID),
		now.UnixNano(),
		now.Add(-window).UnixNano(),
		ceiling,
		(window + time.Minute).Milliseconds(),
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to run stream admit script: %w", err)
	}
	if len(res) != 2 {
		return nil, fmt.Errorf("unexpected stream admit script result: %v", res)
	}

	return &playback.StreamAdmitOutcome{
		Admitted:    res[0] == 1,
		ActiveCount: int(res[1]),
	}, nil
}

func (r *RedisStreamRegistry) Heartbeat(ctx context.Context, scopeID, accountID, contentID uint, window time.Duration, now time.Time) error {
	key := r.buildKey(scopeID)
	member := r.buildMember(accountID, contentID)

	// XX only refreshes a member that is still live; a lapsed stream must
	// go back through admission.
	pipe := r.client.Pipeline()
	pipe.ZAddXX(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: member})
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now.Add(-window).UnixNano()))
	pipe.Expire(ctx, key, window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to refresh stream heartbeat: %w", err)
	}
	return nil
}

func (r *RedisStreamRegistry) CountActive(ctx context.Context, scopeID uint, window time.Duration, now time.Time) (int, error) {
	key := r.buildKey(scopeID)

	pipe := r.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now.Add(-window).UnixNano()))
	zcard := pipe.ZCard(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to count live streams: %w", err)
	}
	return int(zcard.Val()), nil
}

package results

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisKey = "product-manager:test-results"

// RedisRecorder stores outcomes as fields of a Redis hash.
type RedisRecorder struct {
	rdb     *redis.Client
	key     string
	timeout time.Duration
}

func NewRedisRecorder(rdb *redis.Client, key string) *RedisRecorder {
	return &RedisRecorder{rdb: rdb, key: key, timeout: 2 * time.Second}
}

func newRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func (r *RedisRecorder) Record(scenario string, passed bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return r.rdb.HSet(ctx, r.key, scenario, Outcome(passed)).Err()
}

// Outcomes returns every outcome stored under the recorder's key.
func (r *RedisRecorder) Outcomes(ctx context.Context) (map[string]string, error) {
	return r.rdb.HGetAll(ctx, r.key).Result()
}

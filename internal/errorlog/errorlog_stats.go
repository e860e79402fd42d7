package errorlog

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	statsKeyPrefix = "errorlog:daily:"
	statsRetention = 8 * 24 * time.Hour
)

// Stats keeps a per-day failure counter for each endpoint.
//
//go:generate mockgen -source=errorlog_stats.go -destination=mock/errorlog_stats_mock.go -package=mock
type Stats interface {
	Increment(ctx context.Context, endpoint string, at time.Time) (int64, error)
}

type redisStats struct {
	rdb *redis.Client
}

func NewStats(rdb *redis.Client) Stats {
	return &redisStats{rdb: rdb}
}

// StatsKey returns the hash holding the counters of the UTC day of at.
func StatsKey(at time.Time) string {
	return statsKeyPrefix + at.UTC().Format("2006-01-02")
}

func (s *redisStats) Increment(ctx context.Context, endpoint string, at time.Time) (int64, error) {
	key := StatsKey(at)

	pipe := s.rdb.TxPipeline()
	incr := pipe.HIncrBy(ctx, key, endpoint, 1)
	pipe.Expire(ctx, key, statsRetention)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

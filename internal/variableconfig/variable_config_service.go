package variableconfig

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const CacheKeyPrefix = "variable_configs:"

func CacheKey(key string) string {
	return CacheKeyPrefix + key
}

//go:generate mockgen -source=variable_config_service.go -destination=mock/variable_config_service_mock.go -package=mock
type Service interface {
	// GetDecimal returns zero for keys that are not configured.
	GetDecimal(ctx context.Context, key string) (decimal.Decimal, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService builds a Service; rdb may be nil, in which case every call
// reads through to the repository.
func NewService(repo Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("variableconfig.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("variableconfig.service")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		ttl:    ttl,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetDecimal(ctx context.Context, key string) (decimal.Decimal, error) {
	cacheKey := CacheKey(key)

	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			if v, err := decimal.NewFromString(cached); err == nil {
				return v, nil
			}
			s.logger.Warn("discarding unparsable cached config", zap.String("key", key), zap.String("cached", cached))
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("config cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	// 2. Singleflight: satu query untuk banyak request paralel
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		value, found, err := s.repo.FindValue(ctx, key)
		if err != nil {
			return nil, err
		}
		if !found {
			s.logger.Warn("variable config missing, using zero", zap.String("key", key))
		}

		if s.rdb != nil {
			if err := s.rdb.Set(ctx, cacheKey, value.String(), s.ttl).Err(); err != nil {
				s.logger.Warn("config cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return value, nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return v.(decimal.Decimal), nil
}

package app

import (
	"go-salary/internal/config"
	"go-salary/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp connects the stores and registers every module on router.
// The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	// Redis opsional: tanpa Redis, rate bonus dibaca langsung dari DB
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
		if err != nil {
			logger.Warn("redis unavailable, continuing without cache", zap.Error(err))
			rdb = nil
		}
	}

	// 2. Register Modules & Routes
	registerModules(router, gormDB, rdb, cfg)

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = sqlDB.Close()
	}
	return cleanup, nil
}

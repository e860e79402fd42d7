package app

import (
	"go-salary/internal/attendance"
	"go-salary/internal/config"
	"go-salary/internal/errorlog"
	"go-salary/internal/messaging/kafka"
	"go-salary/internal/middleware"
	"go-salary/internal/public"
	"go-salary/internal/salary"
	"go-salary/internal/variableconfig"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	errorLogRepo := errorlog.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	variableConfigRepo := variableconfig.NewRepository(gormDB)

	// --- Services ---
	variableConfigService := variableconfig.NewService(variableConfigRepo, rdb, cfg.Salary.AttendanceRateCacheTTL)
	attendanceService := attendance.NewService(attendanceRepo, variableConfigService)
	salaryService := salary.NewService(salaryRepo, attendanceService)

	// Outbox hanya diisi kalau ada worker yang mengirim ke Kafka
	errorLogService := errorlog.NewService(gormDB, errorLogRepo)
	if cfg.Kafka.Broker != "" {
		outboxRepo := kafka.NewOutboxRepository(gormDB)
		errorLogService = errorlog.NewServiceWithOutbox(gormDB, errorLogRepo, outboxRepo, cfg.Kafka.ErrorLogTopic)
	}

	// --- Handlers ---
	errorHandler := errorlog.NewHandler(errorLogService)
	publicHandler := public.NewHandler()
	salaryHandler := salary.NewHandler(salaryService, errorHandler)

	router.Use(gin.CustomRecovery(errorHandler.Recover))

	// --- Routes Registration ---
	public.RegisterRoutes(router, publicHandler)

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst, errorHandler.Respond))
	{
		salary.RegisterRoutes(api, salaryHandler)
	}
}

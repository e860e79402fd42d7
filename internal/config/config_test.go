package config_test

import (
	"testing"
	"time"

	"go-salary/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "REDIS_ADDR", "ERRORLOG_TOPIC", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "DB_MAX_RETRIES", "ATTENDANCE_RATE_CACHE_TTL", "KAFKA_CONSUMER_GROUP", "ERRORLOG_ALERT_EVERY"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.App.Port)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, "salary.endpoint.error_logged.v1", cfg.Kafka.ErrorLogTopic)
	assert.Equal(t, "go-salary-errorlog-stats", cfg.Kafka.ConsumerGroup)
	assert.Equal(t, int64(50), cfg.Kafka.ErrorAlertEvery)
	assert.Equal(t, 5, cfg.Database.MaxRetries)
	assert.Equal(t, float64(20), cfg.RateLimit.RPS)
	assert.Equal(t, 40, cfg.RateLimit.Burst)
	assert.Equal(t, time.Hour, cfg.Salary.AttendanceRateCacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ATTENDANCE_RATE_CACHE_TTL", "5m")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 5*time.Minute, cfg.Salary.AttendanceRateCacheTTL)
}

func TestLoad_InvalidNumber(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "lots")

	_, err := config.Load()

	assert.Error(t, err)
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	RateLimit RateLimitConfig
	Salary    SalaryConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

// RedisConfig: Addr kosong berarti cache dimatikan.
type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker          string
	ErrorLogTopic   string
	ConsumerGroup   string
	ErrorAlertEvery int64
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type SalaryConfig struct {
	AttendanceRateCacheTTL time.Duration
}

// Load reads the process environment. Call godotenv.Load beforehand when a
// .env file should be honored.
func Load() (*Config, error) {
	cfg := &Config{}

	maxRetries, err := strconv.Atoi(getEnv("DB_MAX_RETRIES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_RETRIES: %w", err)
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "40"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	alertEvery, err := strconv.ParseInt(getEnv("ERRORLOG_ALERT_EVERY", "50"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ERRORLOG_ALERT_EVERY: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("ATTENDANCE_RATE_CACHE_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_RATE_CACHE_TTL: %w", err)
	}

	cfg.App = AppConfig{
		Port: getEnv("PORT", "3000"),
		Env:  getEnv("APP_ENV", "development"),
	}
	cfg.Database = DatabaseConfig{
		Host:       getEnv("DB_HOST", "localhost"),
		Port:       getEnv("DB_PORT", "5432"),
		User:       getEnv("DB_USER", "postgres"),
		Password:   getEnv("DB_PASSWORD", ""),
		Name:       getEnv("DB_NAME", "seryu"),
		SSLMode:    getEnv("DB_SSLMODE", "disable"),
		MaxRetries: maxRetries,
	}
	cfg.Redis = RedisConfig{
		Addr: getEnv("REDIS_ADDR", ""),
	}
	cfg.Kafka = KafkaConfig{
		Broker:          getEnv("KAFKA_BROKER", ""),
		ErrorLogTopic:   getEnv("ERRORLOG_TOPIC", "salary.endpoint.error_logged.v1"),
		ConsumerGroup:   getEnv("KAFKA_CONSUMER_GROUP", "go-salary-errorlog-stats"),
		ErrorAlertEvery: alertEvery,
	}
	cfg.RateLimit = RateLimitConfig{
		RPS:   rps,
		Burst: burst,
	}
	cfg.Salary = SalaryConfig{
		AttendanceRateCacheTTL: cacheTTL,
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

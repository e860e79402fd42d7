package connection

import (
	"context"
	"fmt"
	"time"

	"go-salary/internal/config"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const retryDelay = 5 * time.Second

func normalizeRetries(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func ConnectGORMWithRetry(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode,
	)

	log := zap.L().Named("connection.postgres")
	maxRetries := normalizeRetries(cfg.MaxRetries)

	var lastErr error

	for i := 1; i <= maxRetries; i++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			lastErr = err
			log.Warn("gorm open failed", zap.Int("attempt", i), zap.Int("max_retries", maxRetries), zap.Error(err))
			time.Sleep(retryDelay)
			continue
		}

		sqlDB, err := db.DB()
		if err != nil {
			lastErr = err
			log.Warn("get sql.DB failed", zap.Int("attempt", i), zap.Int("max_retries", maxRetries), zap.Error(err))
			time.Sleep(retryDelay)
			continue
		}

		if err := sqlDB.Ping(); err != nil {
			lastErr = err
			log.Warn("db ping failed", zap.Int("attempt", i), zap.Int("max_retries", maxRetries), zap.Error(err))
			time.Sleep(retryDelay)
			continue
		}

		// Pool config
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)

		log.Info("connected to database", zap.String("host", cfg.Host), zap.String("db", cfg.Name))
		return db, nil
	}

	return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, lastErr)
}

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	log := zap.L().Named("connection.redis")
	maxRetries = normalizeRetries(maxRetries)
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		lastErr = rdb.Ping(ctx).Err()
		cancel()
		if lastErr == nil {
			log.Info("connected to redis", zap.String("addr", addr))
			return rdb, nil
		}

		log.Warn("redis ping failed", zap.Int("attempt", i), zap.Int("max_retries", maxRetries), zap.Error(lastErr))
		time.Sleep(retryDelay)
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("failed to connect redis after %d retries: %w", maxRetries, lastErr)
}

// ConnectKafkaWithRetry dials the broker until it answers, then returns a
// writer. Topic is left empty so every message carries its own topic.
func ConnectKafkaWithRetry(broker string, maxRetries int) (*kafkago.Writer, error) {
	log := zap.L().Named("connection.kafka")
	maxRetries = normalizeRetries(maxRetries)

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		conn, err := kafkago.Dial("tcp", broker)
		if err == nil {
			_, lastErr = conn.Brokers()
			_ = conn.Close()
			if lastErr == nil {
				log.Info("connected to kafka", zap.String("broker", broker))
				return &kafkago.Writer{
					Addr:                   kafkago.TCP(broker),
					Balancer:               &kafkago.Hash{},
					RequiredAcks:           kafkago.RequireAll,
					AllowAutoTopicCreation: true,
				}, nil
			}
		} else {
			lastErr = err
		}

		log.Warn("kafka dial failed", zap.Int("attempt", i), zap.Int("max_retries", maxRetries), zap.Error(lastErr))
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect kafka after %d retries: %w", maxRetries, lastErr)
}

// NewKafkaReader returns a consumer-group reader that commits explicitly.
func NewKafkaReader(broker, topic, groupID string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        groupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}

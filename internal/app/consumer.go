package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"go-salary/internal/config"
	"go-salary/internal/errorlog"
	"go-salary/internal/messaging/kafka/consumer"
	"go-salary/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer counts endpoint.error_logged events per endpoint and day
// in Redis until SIGINT/SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	if cfg.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer rdb.Close()

	reader := connection.NewKafkaReader(cfg.Kafka.Broker, cfg.Kafka.ErrorLogTopic, cfg.Kafka.ConsumerGroup)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeEndpointErrors(ctx, reader, errorlog.NewStats(rdb), cfg.Kafka.ErrorAlertEvery, time.Second, logger)

	logger.Info("consumer shutting down")
	return nil
}

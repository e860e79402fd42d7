package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"go-salary/internal/config"
	"go-salary/internal/messaging/kafka"
	"go-salary/internal/messaging/kafka/producer"
	"go-salary/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker drains outbox_events into Kafka until SIGINT/SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(gormDB)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	logger.Info("worker shutting down")
	return nil
}

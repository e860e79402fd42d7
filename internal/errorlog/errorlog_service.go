package errorlog

import (
	"context"
	"encoding/json"
	"time"

	"go-salary/internal/events"
	"go-salary/internal/messaging/kafka"
	"go-salary/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Entry is a failed request ready to be recorded.
type Entry struct {
	Endpoint   string
	Request    string
	Info       string
	ErrorCode  string
	OccurredAt time.Time
}

//go:generate mockgen -source=errorlog_service.go -destination=mock/errorlog_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, entry Entry) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	topic  string
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, "", logger...)
}

// NewServiceWithOutbox also queues an endpoint.error_logged event in the
// same transaction as the log row. An empty topic falls back to
// events.EndpointErrorLoggedTopic.
func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	topic string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("errorlog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("errorlog.service")
	}
	if topic == "" {
		topic = events.EndpointErrorLoggedTopic
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		topic:  topic,
		logger: l,
	}
}

func (s *service) Record(ctx context.Context, entry Entry) error {
	rid := contextutil.GetRequestID(ctx)

	response, err := json.Marshal(entry.Info)
	if err != nil {
		return err
	}

	occurredAt := entry.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	row := &EndpointErrorLog{
		Endpoint: entry.Endpoint,
		Request:  entry.Request,
		Response: string(response),
		Date:     occurredAt.UTC(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
			s.logger.Error("record endpoint error persist failed",
				zap.String("request_id", rid),
				zap.String("endpoint", entry.Endpoint),
				zap.Error(err),
			)
			return err
		}

		if s.outbox == nil {
			return nil
		}

		// outbox di dalam savepoint: gagal publish tidak boleh menghapus audit row
		if err := tx.Transaction(func(sp *gorm.DB) error {
			return s.enqueue(ctx, sp, rid, row, entry)
		}); err != nil {
			s.logger.Error("record endpoint error outbox persist failed",
				zap.String("request_id", rid),
				zap.Int64("log_id", row.ID),
				zap.Error(err),
			)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("endpoint error recorded",
		zap.String("request_id", rid),
		zap.Int64("log_id", row.ID),
		zap.String("endpoint", row.Endpoint),
	)
	return nil
}

func (s *service) enqueue(ctx context.Context, tx *gorm.DB, rid string, row *EndpointErrorLog, entry Entry) error {
	event := events.EndpointErrorLoggedEvent{
		EventType:  events.EndpointErrorLoggedType,
		RequestID:  rid,
		LogID:      row.ID,
		Endpoint:   row.Endpoint,
		Info:       entry.Info,
		ErrorCode:  entry.ErrorCode,
		OccurredAt: row.Date,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "endpoint_error",
		AggregateID:   row.Endpoint,
		EventType:     event.EventType,
		Topic:         s.topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

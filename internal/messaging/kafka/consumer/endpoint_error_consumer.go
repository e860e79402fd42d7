package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-salary/internal/errorlog"
	"go-salary/internal/events"

	"go.uber.org/zap"
)

const maxRetryBackoff = 30 * time.Second

// ConsumeEndpointErrors tallies endpoint.error_logged events per endpoint
// and day. Every alertEvery-th failure of the same endpoint on a day is
// logged as a warning; alertEvery <= 0 disables the warning.
//
// A failed Redis increment is retried on the same message with doubling
// backoff capped at maxRetryBackoff. A message is committed only after
// it has been counted.
func ConsumeEndpointErrors(
	ctx context.Context,
	reader MessageReader,
	stats errorlog.Stats,
	alertEvery int64,
	backoff time.Duration,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.endpoint_error")
	log.Info("endpoint error consumer started",
		zap.Int64("alert_every", alertEvery),
		zap.Duration("backoff", backoff),
	)

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("endpoint error consumer stopped")
				return
			}
			log.Error("fetch endpoint error message failed", zap.Error(err))
			if !wait(ctx, backoff) {
				log.Info("endpoint error consumer stopped")
				return
			}
			continue
		}

		var event events.EndpointErrorLoggedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode endpoint error event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		at := event.OccurredAt
		if at.IsZero() {
			at = msg.Time
		}
		if at.IsZero() {
			at = time.Now()
		}

		count, err := incrementWithRetry(ctx, stats, event, at, backoff, log)
		if err != nil {
			// ctx selesai di tengah retry, pesan tetap tidak di-commit
			log.Info("endpoint error consumer stopped", zap.Int64("pending_offset", msg.Offset))
			return
		}

		if alertEvery > 0 && count%alertEvery == 0 {
			log.Warn("endpoint failing repeatedly",
				zap.String("endpoint", event.Endpoint),
				zap.String("day", at.UTC().Format("2006-01-02")),
				zap.Int64("count", count),
				zap.String("last_info", event.Info),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit endpoint error message failed", zap.Error(err))
			continue
		}

		log.Debug("endpoint error counted",
			zap.String("request_id", event.RequestID),
			zap.String("endpoint", event.Endpoint),
			zap.Int64("count", count),
		)
	}
}

// incrementWithRetry only returns an error once ctx is done.
func incrementWithRetry(
	ctx context.Context,
	stats errorlog.Stats,
	event events.EndpointErrorLoggedEvent,
	at time.Time,
	backoff time.Duration,
	log *zap.Logger,
) (int64, error) {
	delay := backoff
	for attempt := 1; ; attempt++ {
		count, err := stats.Increment(ctx, event.Endpoint, at)
		if err == nil {
			return count, nil
		}

		log.Error("increment endpoint error stats failed",
			zap.String("endpoint", event.Endpoint),
			zap.Int64("log_id", event.LogID),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)

		if !wait(ctx, delay) {
			return 0, ctx.Err()
		}

		delay *= 2
		if delay > maxRetryBackoff {
			delay = maxRetryBackoff
		}
	}
}

// wait reports false when ctx ends first.
func wait(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

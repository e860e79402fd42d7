package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	errorlogMock "go-salary/internal/errorlog/mock"
	"go-salary/internal/events"
	"go-salary/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// scriptedReader hands out queued messages and cancels the consumer
// once they run out.
type scriptedReader struct {
	messages  []kafkago.Message
	committed []kafkago.Message
	fetchErrs int
	fetches   int
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.fetches++
	if r.fetchErrs > 0 {
		r.fetchErrs--
		return kafkago.Message{}, errors.New("broker unreachable")
	}
	if len(r.messages) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *scriptedReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func eventMessage(t *testing.T, offset int64, e events.EndpointErrorLoggedEvent) kafkago.Message {
	t.Helper()
	payload, err := json.Marshal(e)
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: payload}
}

func TestConsumeEndpointErrors(t *testing.T) {
	at := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	t.Run("counts and commits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stats := errorlogMock.NewMockStats(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &scriptedReader{
			cancel: cancel,
			messages: []kafkago.Message{
				eventMessage(t, 1, events.EndpointErrorLoggedEvent{Endpoint: "/api/v1/salary/driver/list", OccurredAt: at}),
				{Offset: 2, Value: []byte("not json")},
				eventMessage(t, 3, events.EndpointErrorLoggedEvent{Endpoint: "/api/v1/salary/driver/list", OccurredAt: at}),
			},
		}

		gomock.InOrder(
			stats.EXPECT().Increment(gomock.Any(), "/api/v1/salary/driver/list", gomock.Any()).Return(int64(1), nil),
			stats.EXPECT().Increment(gomock.Any(), "/api/v1/salary/driver/list", gomock.Any()).Return(int64(2), nil),
		)

		consumer.ConsumeEndpointErrors(ctx, reader, stats, 2, 0, zap.NewNop())

		if assert.Len(t, reader.committed, 3) {
			assert.Equal(t, int64(1), reader.committed[0].Offset)
			assert.Equal(t, int64(2), reader.committed[1].Offset)
			assert.Equal(t, int64(3), reader.committed[2].Offset)
		}
	})

	t.Run("stats failure retries the same message before fetching the next", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stats := errorlogMock.NewMockStats(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &scriptedReader{
			cancel: cancel,
			messages: []kafkago.Message{
				eventMessage(t, 1, events.EndpointErrorLoggedEvent{Endpoint: "/public", OccurredAt: at}),
				eventMessage(t, 2, events.EndpointErrorLoggedEvent{Endpoint: "/api/v1/salary/driver/list", OccurredAt: at}),
			},
		}

		gomock.InOrder(
			stats.EXPECT().Increment(gomock.Any(), "/public", gomock.Any()).Return(int64(0), errors.New("redis down")),
			stats.EXPECT().Increment(gomock.Any(), "/public", gomock.Any()).Return(int64(0), errors.New("redis down")),
			stats.EXPECT().Increment(gomock.Any(), "/public", gomock.Any()).Return(int64(1), nil),
			stats.EXPECT().Increment(gomock.Any(), "/api/v1/salary/driver/list", gomock.Any()).Return(int64(1), nil),
		)

		consumer.ConsumeEndpointErrors(ctx, reader, stats, 0, time.Millisecond, zap.NewNop())

		if assert.Len(t, reader.committed, 2) {
			assert.Equal(t, int64(1), reader.committed[0].Offset)
			assert.Equal(t, int64(2), reader.committed[1].Offset)
		}
	})

	t.Run("shutdown during retry leaves message uncommitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stats := errorlogMock.NewMockStats(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &scriptedReader{
			cancel: cancel,
			messages: []kafkago.Message{
				eventMessage(t, 9, events.EndpointErrorLoggedEvent{Endpoint: "/public"}),
				eventMessage(t, 10, events.EndpointErrorLoggedEvent{Endpoint: "/public"}),
			},
		}

		stats.EXPECT().Increment(gomock.Any(), "/public", gomock.Any()).
			DoAndReturn(func(context.Context, string, time.Time) (int64, error) {
				cancel()
				return 0, errors.New("redis down")
			})

		consumer.ConsumeEndpointErrors(ctx, reader, stats, 0, time.Hour, zap.NewNop())

		assert.Empty(t, reader.committed)
		assert.Equal(t, 1, reader.fetches)
	})

	t.Run("fetch error backs off and resumes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stats := errorlogMock.NewMockStats(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &scriptedReader{
			cancel:    cancel,
			fetchErrs: 2,
			messages:  []kafkago.Message{eventMessage(t, 4, events.EndpointErrorLoggedEvent{Endpoint: "/public", OccurredAt: at})},
		}

		stats.EXPECT().Increment(gomock.Any(), "/public", gomock.Any()).Return(int64(1), nil)

		start := time.Now()
		consumer.ConsumeEndpointErrors(ctx, reader, stats, 0, 20*time.Millisecond, zap.NewNop())

		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
		assert.Equal(t, 4, reader.fetches)
		if assert.Len(t, reader.committed, 1) {
			assert.Equal(t, int64(4), reader.committed[0].Offset)
		}
	})
}

package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmjfallon/cascade-beta/internal/domain/event"
)

type capturingWriter struct {
	messages []kafkago.Message
	writeErr error
}

func (w *capturingWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.writeErr != nil {
		return w.writeErr
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *capturingWriter) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestKafkaEventPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes serialized events with headers", func(t *testing.T) {
		w := &capturingWriter{}
		pub := &KafkaEventPublisher{writer: w, topic: "cascade-events", logger: discardLogger()}

		evt := event.NewComparisonCompleted("sc-1", "avalanche", 14, decimal.RequireFromString("3120.55"), 286)
		require.NoError(t, pub.Publish(ctx, evt))

		require.Len(t, w.messages, 1)
		msg := w.messages[0]
		assert.Equal(t, evt.EventID(), string(msg.Key))

		headers := make(map[string]string, len(msg.Headers))
		for _, h := range msg.Headers {
			headers[h.Key] = string(h.Value)
		}
		assert.Equal(t, "cascade.comparison.completed", headers["event_type"])
		assert.Equal(t, evt.EventID(), headers["event_id"])

		var decoded event.ComparisonCompleted
		require.NoError(t, json.Unmarshal(msg.Value, &decoded))
		assert.Equal(t, "sc-1", decoded.ScenarioID)
		assert.Equal(t, 14, decoded.MonthsSaved)
		assert.True(t, decoded.InterestSaved.Equal(decimal.RequireFromString("3120.55")))
	})

	t.Run("no events means no write", func(t *testing.T) {
		w := &capturingWriter{writeErr: errors.New("should not be called")}
		pub := &KafkaEventPublisher{writer: w, topic: "cascade-events", logger: discardLogger()}

		require.NoError(t, pub.Publish(ctx))
	})

	t.Run("wraps writer failures with the topic", func(t *testing.T) {
		w := &capturingWriter{writeErr: errors.New("broker down")}
		pub := &KafkaEventPublisher{writer: w, topic: "cascade-events", logger: discardLogger()}

		err := pub.Publish(ctx, event.NewComparisonCompleted("", "snowball", 0, decimal.Zero, 120))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cascade-events")
	})
}

package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaPublisher writes keyed JSON messages with event_type and
// aggregate_type headers. Writes happen off the request path.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewKafkaPublisher(writer *kafka.Writer, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		logger: logger.Named("events.kafka"),
	}
}

func (p *KafkaPublisher) Publish(_ context.Context, eventType, aggregateType string, key int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Warn("marshal event payload failed",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.Itoa(key)),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
			{Key: "aggregate_type", Value: []byte(aggregateType)},
		},
	}

	// Detached from the request context so a slow broker never delays
	// or fails the HTTP response.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			p.logger.Warn("publish event failed",
				zap.String("event_type", eventType),
				zap.Int("key", key),
				zap.Error(err),
			)
		}
	}()
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

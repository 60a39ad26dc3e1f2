package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopcore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Writer is the subset of kafka.Writer the forwarder needs
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Envelope is the JSON document written to Kafka for each domain event
type Envelope struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}

// KafkaForwarder is a wildcard event handler that writes every event to a Kafka topic,
// keyed by aggregate ID so events of one aggregate stay ordered within a partition.
type KafkaForwarder struct {
	writer Writer
	logger *zap.Logger
}

// NewKafkaWriter creates a writer for topic on brokers
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
}

// NewKafkaForwarder creates a forwarder on writer
func NewKafkaForwarder(writer Writer, logger *zap.Logger) *KafkaForwarder {
	return &KafkaForwarder{writer: writer, logger: logger.Named("kafka_forwarder")}
}

// Handle writes ev to Kafka
func (f *KafkaForwarder) Handle(ctx context.Context, ev shared.DomainEvent) error {
	msg, err := NewMessage(ev)
	if err != nil {
		return err
	}
	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event %s to kafka: %w", ev.EventType(), err)
	}
	f.logger.Debug("Event forwarded",
		zap.String("event_type", ev.EventType()),
		zap.String("aggregate_id", ev.AggregateID().String()),
	)
	return nil
}

// EventTypes is empty so the forwarder receives every event
func (f *KafkaForwarder) EventTypes() []string {
	return nil
}

// Close flushes and closes the writer
func (f *KafkaForwarder) Close() error {
	return f.writer.Close()
}

// NewMessage encodes ev as a Kafka message
func NewMessage(ev shared.DomainEvent) (kafka.Message, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode event payload: %w", err)
	}
	value, err := json.Marshal(Envelope{
		ID:            ev.EventID().String(),
		Type:          ev.EventType(),
		AggregateID:   ev.AggregateID().String(),
		AggregateType: ev.AggregateType(),
		OccurredAt:    ev.OccurredAt().UTC(),
		Payload:       payload,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode event envelope: %w", err)
	}
	return kafka.Message{
		Key:   []byte(ev.AggregateID().String()),
		Value: value,
		Time:  ev.OccurredAt(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ev.EventType())},
		},
	}, nil
}

var _ shared.EventHandler = (*KafkaForwarder)(nil)

// Package kafkanotifier publishes tracking notifications to a Kafka topic
// consumed by the customer messaging service.
package kafkanotifier

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront/internal/core/domain/model/notification"
	"storefront/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

const HeaderEventType = "event_type"

var _ ports.TrackingNotifier = (*Notifier)(nil)

// MessageWriter is the subset of *kafka.Writer the notifier needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewWriter returns a synchronous writer that waits for all in-sync replicas.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

type Notifier struct {
	writer MessageWriter
	logger *zap.Logger
}

func NewNotifier(writer MessageWriter, logger *zap.Logger) *Notifier {
	return &Notifier{
		writer: writer,
		logger: logger.With(zap.String("component", "kafkanotifier")),
	}
}

// SendTrackingNotification writes one message keyed by order id, so every
// event of an order lands on the same partition.
func (n *Notifier) SendTrackingNotification(ctx context.Context, payload notification.TrackingNotification) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode tracking notification: %w", err)
	}

	msg := kafka.Message{
		Key:     []byte(payload.OrderID),
		Value:   value,
		Headers: injectTraceHeaders(ctx, []kafka.Header{{Key: HeaderEventType, Value: []byte(notification.EventTypeOrderShipped)}}),
	}

	if err = n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish tracking notification: %w", err)
	}

	n.logger.Debug("tracking notification published", zap.String("orderId", payload.OrderID))
	return nil
}

func (n *Notifier) Close() error {
	return n.writer.Close()
}

func injectTraceHeaders(ctx context.Context, headers []kafka.Header) []kafka.Header {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	for k, v := range carrier {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	return headers
}

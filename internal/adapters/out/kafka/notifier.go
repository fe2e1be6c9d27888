// Package kafka publishes outbound notifications to the messaging backbone.
// Delivery is fire-and-forget: a command that produced a notification must
// never fail because the broker was unreachable, so publish errors are logged
// and swallowed.
package kafka

import (
	"context"
	"encoding/json"

	"printworks/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Notifier implements ports.Notifier on top of a kafka-go writer. One topic
// carries all notification events; consumers filter on the event field.
type Notifier struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewNotifier creates a notifier writing to the given brokers and topic.
func NewNotifier(brokers []string, topic string, logger *zap.Logger) *Notifier {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
		Logger:   zap.NewStdLog(logger.With(zap.String("kafka_component", "notifier"))),
	}

	logger.Info("kafka notifier initialized",
		zap.Strings("brokers", brokers),
		zap.String("topic", topic))

	return &Notifier{writer: writer, logger: logger}
}

// Publish sends one notification. The order ID keys the message so events for
// the same order stay in partition order.
func (n *Notifier) Publish(ctx context.Context, notification ports.Notification) {
	value, err := json.Marshal(notification)
	if err != nil {
		n.logger.Error("failed to encode notification",
			zap.String("event", notification.Event),
			zap.Error(err))
		return
	}

	msg := kafka.Message{
		Key:   []byte(notification.OrderID),
		Value: value,
	}
	if err = n.writer.WriteMessages(ctx, msg); err != nil {
		n.logger.Error("failed to publish notification",
			zap.String("event", notification.Event),
			zap.String("order_id", notification.OrderID),
			zap.Error(err))
		return
	}

	n.logger.Debug("published notification",
		zap.String("event", notification.Event),
		zap.String("order_id", notification.OrderID))
}

// Close flushes and closes the underlying writer.
func (n *Notifier) Close() error {
	if err := n.writer.Close(); err != nil {
		n.logger.Error("failed to close kafka notifier", zap.Error(err))
		return err
	}
	n.logger.Info("kafka notifier closed")
	return nil
}

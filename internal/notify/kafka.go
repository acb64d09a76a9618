package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/perfume-shop/internal/config"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSender publishes notifications to the notifications topic, keyed by
// recipient so messages to one customer stay ordered.
type KafkaSender struct {
	logger *slog.Logger
	writer messageWriter
}

func NewKafkaSender(logger *slog.Logger, cfg config.Kafka) *KafkaSender {
	return &KafkaSender{
		logger: logger.With(slog.String("notifier", "kafka")),
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func (s *KafkaSender) Send(ctx context.Context, to, text string) error {
	value, err := json.Marshal(NewMessage(to, text))
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	// В библиотеке уже есть retry
	if err := s.writer.WriteMessages(ctx, kafka.Message{Key: []byte(to), Value: value}); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	s.logger.DebugContext(ctx, "notification published", slog.String("to", to))
	return nil
}

func (s *KafkaSender) Close() error {
	return s.writer.Close()
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/perfume-shop/internal/config"
	"github.com/SergeyBogomolovv/perfume-shop/internal/notify"
	"github.com/SergeyBogomolovv/perfume-shop/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type MessageDeliverer interface {
	Deliver(ctx context.Context, m notify.Message) error
}

var deliverRetry = utils.RetryConfig{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2,
}

// NotificationRelay consumes the notifications topic and hands every message
// to the messaging gateway. Undeliverable messages go to the DLQ.
type NotificationRelay struct {
	dlq       *kafka.Writer
	reader    *kafka.Reader
	logger    *slog.Logger
	validate  *validator.Validate
	deliverer MessageDeliverer
	retry     utils.RetryConfig
}

func NewNotificationRelay(logger *slog.Logger, cfg config.Kafka, deliverer MessageDeliverer) *NotificationRelay {
	return &NotificationRelay{
		logger: logger.With(slog.String("handler", "relay")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		validate:  validator.New(),
		deliverer: deliverer,
		retry:     deliverRetry,
	}
}

func (h *NotificationRelay) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		relayInProgress.Inc()
		start := time.Now()

		if err := h.handleMessage(ctx, m.Value); err != nil {
			relayFailed.Inc()
			h.logger.Error("failed to relay notification", slog.Any("error", err), slog.Int64("offset", m.Offset))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				relayInProgress.Dec()
				continue
			}
			relayDLQ.Inc()
		} else {
			relayDelivered.Inc()
		}

		relayDuration.Observe(time.Since(start).Seconds())
		relayInProgress.Dec()

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// handleMessage retries transient gateway failures; a rejected or malformed message fails at once.
func (h *NotificationRelay) handleMessage(ctx context.Context, value []byte) error {
	var msg notify.Message
	if err := json.Unmarshal(value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal notification: %w", err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid notification: %w", err)
	}

	return utils.RetryContext(ctx, h.retry, func(ctx context.Context) error {
		return h.deliverer.Deliver(ctx, msg)
	}, notify.ErrRejected)
}

func (h *NotificationRelay) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *NotificationRelay) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}

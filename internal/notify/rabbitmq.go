package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/perfume-shop/internal/config"
	"github.com/SergeyBogomolovv/perfume-shop/pkg/utils"

	amqp "github.com/rabbitmq/amqp091-go"
)

var dialRetry = utils.RetryConfig{
	MaxAttempts:  5,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2,
}

// RabbitSender publishes notifications to a durable topic exchange. The
// connection is opened on first use and redialed after it breaks.
type RabbitSender struct {
	logger     *slog.Logger
	url        string
	exchange   string
	routingKey string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewRabbitSender(logger *slog.Logger, cfg config.RabbitMQ) *RabbitSender {
	return &RabbitSender{
		logger:     logger.With(slog.String("notifier", "rabbitmq")),
		url:        cfg.URL,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
	}
}

func (s *RabbitSender) Send(ctx context.Context, to, text string) error {
	body, err := json.Marshal(NewMessage(to, text))
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch, err := s.channelLocked(ctx)
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx,
		s.exchange,
		s.routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		s.resetLocked()
		return fmt.Errorf("failed to publish notification to exchange %s: %w", s.exchange, err)
	}
	return nil
}

func (s *RabbitSender) channelLocked(ctx context.Context) (*amqp.Channel, error) {
	if s.channel != nil && !s.channel.IsClosed() {
		return s.channel, nil
	}
	s.resetLocked()

	err := utils.RetryContext(ctx, dialRetry, func(ctx context.Context) error {
		conn, err := amqp.Dial(s.url)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to connect to rabbitmq", slog.Any("error", err))
			return err
		}

		ch, err := conn.Channel()
		if err != nil {
			conn.Close()
			return fmt.Errorf("failed to open channel: %w", err)
		}

		err = ch.ExchangeDeclare(
			s.exchange,
			"topic",
			true,  // durable
			false, // auto-deleted
			false, // internal
			false, // no-wait
			nil,
		)
		if err != nil {
			ch.Close()
			conn.Close()
			return fmt.Errorf("failed to declare exchange %s: %w", s.exchange, err)
		}

		s.conn, s.channel = conn, ch
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rabbitmq unavailable: %w", err)
	}

	s.logger.InfoContext(ctx, "rabbitmq connected", slog.String("exchange", s.exchange))
	return s.channel, nil
}

func (s *RabbitSender) resetLocked() {
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		s.conn.Close()
	}
	s.conn, s.channel = nil, nil
}

func (s *RabbitSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.channel != nil {
		if err := s.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			return err
		}
	}
	if s.conn != nil {
		if err := s.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			return err
		}
	}
	s.conn, s.channel = nil, nil
	return nil
}

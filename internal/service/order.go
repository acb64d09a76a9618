package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"
	"github.com/SergeyBogomolovv/perfume-shop/pkg/trm"
	"github.com/SergeyBogomolovv/perfume-shop/pkg/utils"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	cache     Cache
	notifier  dispatcher
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	cache Cache,
	notifier Notifier,
	notifyTimeout time.Duration,
) *orderService {
	logger = logger.With(slog.String("service", "order"))
	return &orderService{
		logger:    logger,
		txManager: txManager,
		orders:    orders,
		cache:     cache,
		notifier:  dispatcher{logger: logger, notifier: notifier, timeout: notifyTimeout},
	}
}

// UpdateStatus sets the fulfilment status of an order. Payment status and stock are untouched.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) (_ entities.Order, err error) {
	ctx, span := tracer.Start(ctx, "UpdateOrderStatus",
		trace.WithAttributes(
			attribute.String("order.id", orderID),
			attribute.String("order.status", string(status)),
		),
	)
	defer func() { endSpan(span, err) }()

	if !status.Valid() {
		return entities.Order{}, fmt.Errorf("%w: unknown order status %q", entities.ErrValidation, status)
	}

	var order entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		o.OrderStatus = status
		if err := s.orders.UpdateOrder(ctx, o); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		order = o
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(order.TrackingID)
	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", order.ID),
		slog.String("status", string(status)),
	)

	s.notifier.send(ctx, "status_changed", order.Customer.Phone, statusChangedMessage(order))
	return order, nil
}

func (s *orderService) TrackOrder(ctx context.Context, trackingID string) (entities.Order, error) {
	if data, ok := s.cache.Get(trackingID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("tracking_id", trackingID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func(ctx context.Context) error {
		var err error
		order, err = s.orders.GetOrderByTrackingID(ctx, trackingID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.RetryContext(ctx, cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("tracking_id", trackingID), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(trackingID, data)
	return order, nil
}

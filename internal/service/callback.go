package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"
	"github.com/SergeyBogomolovv/perfume-shop/pkg/trm"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type CallbackOutcome string

const (
	CallbackPaid      CallbackOutcome = "paid"
	CallbackFailed    CallbackOutcome = "failed"
	CallbackDuplicate CallbackOutcome = "duplicate"
	CallbackIgnored   CallbackOutcome = "ignored"
)

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type paymentService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	products    ProductRepo
	orders      OrderRepo
	cache       Cache
	notifier    dispatcher
	successCode string
}

func NewPaymentService(
	logger *slog.Logger,
	txManager trm.Manager,
	products ProductRepo,
	orders OrderRepo,
	cache Cache,
	notifier Notifier,
	successCode string,
	notifyTimeout time.Duration,
) *paymentService {
	logger = logger.With(slog.String("service", "payment"))
	return &paymentService{
		logger:      logger,
		txManager:   txManager,
		products:    products,
		orders:      orders,
		cache:       cache,
		notifier:    dispatcher{logger: logger, notifier: notifier, timeout: notifyTimeout},
		successCode: successCode,
	}
}

// HandleCallback reconciles an order with the provider's final payment result.
// Only a pending order transitions; any later delivery of a callback for the
// same reference is a no-op, so stock is restored at most once.
func (s *paymentService) HandleCallback(ctx context.Context, cb entities.PaymentCallback) (outcome CallbackOutcome, err error) {
	ctx, span := tracer.Start(ctx, "HandleCallback",
		trace.WithAttributes(
			attribute.String("order.reference", cb.ThirdPartyReference),
			attribute.String("payment.result_code", cb.ResultCode),
		),
	)
	defer func() {
		label := string(outcome)
		if err != nil {
			label = outcomeLabel(err)
		}
		callbacksTotal.WithLabelValues(label).Inc()
		endSpan(span, err)
	}()

	logger := s.logger.With(slog.String("reference", cb.ThirdPartyReference))

	var order entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetOrderByReference(ctx, cb.ThirdPartyReference)
		if err != nil {
			return err
		}
		order = o

		if !order.PaymentMethod.IsMobileMoney() {
			outcome = CallbackIgnored
			return nil
		}
		if order.PaymentStatus != entities.PaymentStatusPending {
			outcome = CallbackDuplicate
			return nil
		}

		order.Provider.ResponseCode = cb.ResultCode
		order.Provider.ResponseDescription = cb.ResultDescription

		if cb.ResultCode == s.successCode {
			outcome = CallbackPaid
			order.PaymentStatus = entities.PaymentStatusPaid
			// статус, выставленный администратором, не откатываем
			if order.OrderStatus != entities.OrderStatusProcessing {
				logger.WarnContext(ctx, "payment settled for order past processing",
					slog.String("order_id", order.ID),
					slog.String("order_status", string(order.OrderStatus)),
				)
			}
		} else {
			outcome = CallbackFailed
			order.PaymentStatus = entities.PaymentStatusFailed
			order.OrderStatus = entities.OrderStatusCancelled
			for _, it := range order.Items {
				if err := s.products.RestoreStock(ctx, it.ProductID, it.Quantity); err != nil {
					return fmt.Errorf("failed to restore stock of %s: %w", it.ProductID, err)
				}
			}
		}

		if err := s.orders.UpdateOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to handle payment callback", slog.Any("error", err))
		return "", err
	}

	switch outcome {
	case CallbackIgnored:
		logger.WarnContext(ctx, "callback for order without provider payment ignored",
			slog.String("order_id", order.ID),
			slog.String("method", string(order.PaymentMethod)),
		)
		return outcome, nil
	case CallbackDuplicate:
		logger.InfoContext(ctx, "duplicate payment callback",
			slog.String("order_id", order.ID),
			slog.String("payment_status", string(order.PaymentStatus)),
		)
		return outcome, nil
	}

	s.cache.Delete(order.TrackingID)
	logger.InfoContext(ctx, "payment reconciled",
		slog.String("order_id", order.ID),
		slog.String("outcome", string(outcome)),
		slog.String("result_code", cb.ResultCode),
	)

	if outcome == CallbackPaid {
		s.notifier.send(ctx, "payment_confirmed", order.Customer.Phone, paymentConfirmedMessage(order))
	} else {
		s.notifier.send(ctx, "payment_failed", order.Customer.Phone, paymentFailedMessage(order))
	}
	return outcome, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"
	"github.com/SergeyBogomolovv/perfume-shop/pkg/trm"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type ProductRepo interface {
	FindProduct(ctx context.Context, id string) (entities.Product, error)
	// ReserveStock returns entities.ErrInsufficientStock instead of driving stock negative.
	ReserveStock(ctx context.Context, id string, qty int) error
	RestoreStock(ctx context.Context, id string, qty int) error
}

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	UpdateOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	// GetOrderByReference and GetOrderByID lock the row when called inside a transaction.
	GetOrderByReference(ctx context.Context, ref string) (entities.Order, error)
	GetOrderByTrackingID(ctx context.Context, trackingID string) (entities.Order, error)
}

type PaymentGateway interface {
	Initiate(ctx context.Context, req entities.PaymentRequest) (entities.PaymentAck, error)
}

type CartLine struct {
	ProductID string
	Quantity  int
}

type CheckoutInput struct {
	Customer      entities.CustomerInfo
	Lines         []CartLine
	PaymentMethod entities.PaymentMethod
}

type CheckoutResult struct {
	OrderID       string
	TrackingID    string
	PaymentStatus entities.PaymentStatus
	// nil unless the payment was initiated with the provider
	Payment *entities.PaymentAck
}

type CheckoutConfig struct {
	PaymentTimeout time.Duration
	NotifyTimeout  time.Duration
}

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	products  ProductRepo
	orders    OrderRepo
	gateway   PaymentGateway
	ids       IDGenerator
	phone     PhoneNormalizer
	notifier  dispatcher

	paymentTimeout time.Duration
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	products ProductRepo,
	orders OrderRepo,
	gateway PaymentGateway,
	notifier Notifier,
	ids IDGenerator,
	phone PhoneNormalizer,
	cfg CheckoutConfig,
) *checkoutService {
	logger = logger.With(slog.String("service", "checkout"))
	return &checkoutService{
		logger:         logger,
		txManager:      txManager,
		products:       products,
		orders:         orders,
		gateway:        gateway,
		ids:            ids,
		phone:          phone,
		notifier:       dispatcher{logger: logger, notifier: notifier, timeout: cfg.NotifyTimeout},
		paymentTimeout: cfg.PaymentTimeout,
	}
}

// Checkout reserves stock, persists a pending order and initiates payment as one
// unit of work: on any failure no stock moves and no order is stored.
func (s *checkoutService) Checkout(ctx context.Context, in CheckoutInput) (_ CheckoutResult, err error) {
	ctx, span := tracer.Start(ctx, "Checkout",
		trace.WithAttributes(attribute.String("payment.method", string(in.PaymentMethod))),
	)
	start := time.Now()
	defer func() {
		checkoutTotal.WithLabelValues(string(in.PaymentMethod), outcomeLabel(err)).Inc()
		checkoutDuration.Observe(time.Since(start).Seconds())
		endSpan(span, err)
	}()

	lines, err := validateCheckout(in)
	if err != nil {
		return CheckoutResult{}, err
	}

	var msisdn string
	if in.PaymentMethod.IsMobileMoney() {
		if msisdn, err = s.phone.Normalize(in.Customer.Phone); err != nil {
			return CheckoutResult{}, err
		}
	}

	var (
		order entities.Order
		ack   *entities.PaymentAck
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		items, err := s.reserve(ctx, lines)
		if err != nil {
			return err
		}

		order = s.newOrder(in, items)
		if order.PaymentMethod == entities.PaymentMethodCard {
			// оплата картой подтверждается сразу
			order.PaymentStatus = entities.PaymentStatusPaid
		}
		if err := s.orders.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		if !order.PaymentMethod.IsMobileMoney() {
			return nil
		}

		res, err := s.initiatePayment(ctx, order, msisdn)
		if err != nil {
			return err
		}
		order.Provider.ConversationID = res.ConversationID
		order.Provider.ResponseCode = res.ResponseCode
		order.Provider.ResponseDescription = res.ResponseDescription
		ack = &res

		if err := s.orders.UpdateOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save provider acknowledgment: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "checkout aborted",
			slog.String("method", string(in.PaymentMethod)),
			slog.Any("error", err),
		)
		return CheckoutResult{}, err
	}

	span.SetAttributes(
		attribute.String("order.id", order.ID),
		attribute.String("order.reference", order.Provider.ThirdPartyReference),
	)
	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.String("tracking_id", order.TrackingID),
		slog.String("total", order.TotalAmount.String()),
		slog.String("payment_status", string(order.PaymentStatus)),
	)

	s.notifier.send(ctx, "order_created", order.Customer.Phone, orderCreatedMessage(order))

	return CheckoutResult{
		OrderID:       order.ID,
		TrackingID:    order.TrackingID,
		PaymentStatus: order.PaymentStatus,
		Payment:       ack,
	}, nil
}

// reserve validates every line against the catalog before decrementing any stock.
func (s *checkoutService) reserve(ctx context.Context, lines []CartLine) ([]entities.LineItem, error) {
	items := make([]entities.LineItem, 0, len(lines))
	for _, l := range lines {
		product, err := s.products.FindProduct(ctx, l.ProductID)
		if errors.Is(err, entities.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: %s", entities.ErrProductNotFound, l.ProductID)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to find product %s: %w", l.ProductID, err)
		}
		if l.Quantity > product.Stock {
			return nil, fmt.Errorf("%w: %s has %d left, %d requested",
				entities.ErrInsufficientStock, product.ID, product.Stock, l.Quantity)
		}

		items = append(items, entities.LineItem{
			ProductID: product.ID,
			Quantity:  l.Quantity,
			UnitPrice: product.Price,
		})
	}

	for _, it := range items {
		if err := s.products.ReserveStock(ctx, it.ProductID, it.Quantity); err != nil {
			return nil, fmt.Errorf("failed to reserve %s: %w", it.ProductID, err)
		}
	}
	return items, nil
}

func (s *checkoutService) newOrder(in CheckoutInput, items []entities.LineItem) entities.Order {
	now := time.Now().UTC()
	return entities.Order{
		ID:            s.ids.OrderID(),
		TrackingID:    s.ids.TrackingID(),
		Customer:      in.Customer,
		Items:         items,
		TotalAmount:   entities.CalculateTotal(items),
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: entities.PaymentStatusPending,
		OrderStatus:   entities.OrderStatusProcessing,
		Provider: entities.ProviderCorrelation{
			ThirdPartyReference: s.ids.Reference(),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *checkoutService) initiatePayment(ctx context.Context, order entities.Order, msisdn string) (entities.PaymentAck, error) {
	ctx, cancel := context.WithTimeout(ctx, s.paymentTimeout)
	defer cancel()

	start := time.Now()
	ack, err := s.gateway.Initiate(ctx, entities.PaymentRequest{
		Method:    order.PaymentMethod,
		Reference: order.Provider.ThirdPartyReference,
		Amount:    order.TotalAmount,
		Phone:     msisdn,
	})
	providerDuration.WithLabelValues(outcomeLabel(err)).Observe(time.Since(start).Seconds())

	if err == nil {
		return ack, nil
	}
	if errors.Is(err, entities.ErrProviderCommunication) {
		return entities.PaymentAck{}, err
	}
	return entities.PaymentAck{}, fmt.Errorf("%w: %w", entities.ErrProviderCommunication, err)
}

// validateCheckout checks the request shape and merges repeated products into one line.
// Lines come back sorted by product id so concurrent checkouts lock catalog rows in the same order.
func validateCheckout(in CheckoutInput) ([]CartLine, error) {
	if strings.TrimSpace(in.Customer.Name) == "" {
		return nil, fmt.Errorf("%w: customer name is required", entities.ErrValidation)
	}
	if strings.TrimSpace(in.Customer.Phone) == "" {
		return nil, fmt.Errorf("%w: customer phone is required", entities.ErrValidation)
	}
	if !in.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", entities.ErrValidation, in.PaymentMethod)
	}
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", entities.ErrValidation)
	}

	lines := make([]CartLine, 0, len(in.Lines))
	index := make(map[string]int, len(in.Lines))
	for _, l := range in.Lines {
		if l.ProductID == "" {
			return nil, fmt.Errorf("%w: product id is required", entities.ErrValidation)
		}
		if l.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity of %s must be at least 1", entities.ErrValidation, l.ProductID)
		}
		if i, ok := index[l.ProductID]; ok {
			lines[i].Quantity += l.Quantity
			continue
		}
		index[l.ProductID] = len(lines)
		lines = append(lines, l)
	}
	slices.SortFunc(lines, func(a, b CartLine) int { return strings.Compare(a.ProductID, b.ProductID) })
	return lines, nil
}

package service

import (
	"errors"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/SergeyBogomolovv/perfume-shop/internal/service")

var (
	checkoutTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "perfume_shop",
			Subsystem: "checkout",
			Name:      "checkouts_total",
			Help:      "Total number of checkout attempts by payment method and outcome",
		},
		[]string{"method", "outcome"},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "perfume_shop",
			Subsystem: "checkout",
			Name:      "checkout_duration_seconds",
			Help:      "Histogram of checkout durations in seconds, provider call included",
			Buckets:   prometheus.DefBuckets,
		},
	)

	providerDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "perfume_shop",
			Subsystem: "payment",
			Name:      "provider_request_duration_seconds",
			Help:      "Histogram of payment initiation request durations in seconds",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 15, 30},
		},
		[]string{"outcome"},
	)

	callbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "perfume_shop",
			Subsystem: "payment",
			Name:      "callbacks_total",
			Help:      "Total number of payment callbacks by outcome",
		},
		[]string{"outcome"},
	)

	notificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "perfume_shop",
			Subsystem: "notifications",
			Name:      "notifications_total",
			Help:      "Total number of customer notifications by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutTotal,
		checkoutDuration,
		providerDuration,
		callbacksTotal,
		notificationsTotal,
	)
}

// outcomeLabel maps an error to a low-cardinality metric label.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, entities.ErrValidation):
		return "invalid"
	case errors.Is(err, entities.ErrInvalidPhoneNumber):
		return "invalid_phone"
	case errors.Is(err, entities.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, entities.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, entities.ErrProviderCommunication):
		return "provider_error"
	case errors.Is(err, entities.ErrOrderNotFound):
		return "order_not_found"
	default:
		return "error"
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcomeLabel(err))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

package service

import (
	"context"
	"log/slog"
	"time"
)

type Notifier interface {
	Send(ctx context.Context, to, text string) error
}

// dispatcher delivers customer notifications on a best-effort basis: it is
// bounded by timeout, detached from request cancellation, and only logs failures.
type dispatcher struct {
	logger   *slog.Logger
	notifier Notifier
	timeout  time.Duration
}

func (d dispatcher) send(ctx context.Context, kind, to, text string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	if err := d.notifier.Send(ctx, to, text); err != nil {
		notificationsTotal.WithLabelValues(kind, "error").Inc()
		d.logger.WarnContext(ctx, "failed to send notification",
			slog.String("kind", kind),
			slog.Any("error", err),
		)
		return
	}
	notificationsTotal.WithLabelValues(kind, "sent").Inc()
}

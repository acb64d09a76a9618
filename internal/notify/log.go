package notify

import (
	"context"
	"log/slog"
)

// LogSender writes notifications to the log instead of delivering them. Used in development.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With(slog.String("notifier", "log"))}
}

func (s *LogSender) Send(ctx context.Context, to, text string) error {
	s.logger.InfoContext(ctx, "notification", slog.String("to", to), slog.String("text", text))
	return nil
}

func (s *LogSender) Close() error {
	return nil
}

package notification

import (
	"context"
	"log/slog"

	"gatehouse/internal/domain/service"
)

// logService writes messages to the logger instead of delivering them.
// It stands in for the SMTP relay in local development, where the
// verification link in the log output is enough to complete the flow.
type logService struct {
	logger *slog.Logger
}

// NewLogService is the constructor for logService.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

// Send logs the message instead of sending it.
func (s *logService) Send(ctx context.Context, to, subject, body string) error {
	s.logger.LogAttrs(ctx, slog.LevelInfo, "Outbound mail suppressed, logging instead",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", body),
	)

	return nil
}

package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/pesach-orders/core/logger"
)

type loggingSender struct {
	next EmailSender
	log  *slog.Logger
}

// NewLoggingSender wraps next so that every attempt is logged with its
// outcome and latency. The error from next is returned unchanged.
func NewLoggingSender(next EmailSender, log *slog.Logger) EmailSender {
	if log == nil {
		log = logger.NewNope()
	}
	return &loggingSender{next: next, log: log}
}

func (s *loggingSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	start := time.Now()
	err := s.next.SendEmail(ctx, params)

	attrs := []any{
		logger.Component("email"),
		logger.Recipient(params.SendTo),
		logger.Tag(params.Tag),
		slog.String("subject", params.Subject),
		logger.Elapsed(start),
	}
	if err != nil {
		s.log.ErrorContext(ctx, "email delivery failed", append(attrs, logger.Result("failed"), logger.Error(err))...)
		return err
	}

	s.log.InfoContext(ctx, "email delivered", append(attrs, logger.Result("sent"))...)
	return nil
}

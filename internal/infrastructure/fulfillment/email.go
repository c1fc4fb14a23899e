package fulfillment

import (
	"context"
	"log/slog"

	"learnhub_checkout/internal/usecase/interfaces"
)

// LogEmailSender records confirmation emails in the structured log. Delivery through
// a mail provider is outside this service.
type LogEmailSender struct {
	logger *slog.Logger
}

var _ interfaces.IEmailSender = (*LogEmailSender)(nil)

func NewLogEmailSender(logger *slog.Logger) *LogEmailSender {
	return &LogEmailSender{logger: logger}
}

func (s *LogEmailSender) SendConfirmationEmail(ctx context.Context, buyerID, courseID, invoiceRef string) error {
	s.logger.InfoContext(ctx, "[checkout][email] confirmation email queued",
		"buyer_id", buyerID, "course_id", courseID, "invoice_ref", invoiceRef)
	return nil
}

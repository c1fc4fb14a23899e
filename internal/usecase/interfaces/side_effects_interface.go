package interfaces

import (
	"context"
	"time"
)

// IInvoiceGenerator issues an invoice for a fulfilled intent. Calling it twice for the
// same intent must return the same reference.
type IInvoiceGenerator interface {
	GenerateInvoice(ctx context.Context, intentID string) (invoiceRef string, err error)
}

type IEmailSender interface {
	SendConfirmationEmail(ctx context.Context, buyerID, courseID, invoiceRef string) error
}

// AccessGrantedEvent is published after a grant is created.
type AccessGrantedEvent struct {
	IntentID   string    `json:"intent_id"`
	BuyerID    string    `json:"buyer_id"`
	CourseID   string    `json:"course_id"`
	InvoiceRef string    `json:"invoice_ref"`
	GrantedAt  time.Time `json:"granted_at"`
}

type IEventPublisher interface {
	PublishAccessGranted(ctx context.Context, event AccessGrantedEvent) error
}

package fulfillment

import (
	"context"
	"errors"
	"strings"

	"learnhub_checkout/internal/usecase/interfaces"
)

var ErrEmptyIntentID = errors.New("empty intent id")

// InvoiceGenerator derives invoice references from the intent id, so regenerating an
// invoice on retry yields the same reference.
type InvoiceGenerator struct {
	prefix string
}

var _ interfaces.IInvoiceGenerator = (*InvoiceGenerator)(nil)

func NewInvoiceGenerator() *InvoiceGenerator {
	return &InvoiceGenerator{prefix: "INV-"}
}

func (g *InvoiceGenerator) GenerateInvoice(_ context.Context, intentID string) (string, error) {
	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return "", ErrEmptyIntentID
	}
	return g.prefix + strings.ToUpper(strings.ReplaceAll(intentID, "-", "")), nil
}

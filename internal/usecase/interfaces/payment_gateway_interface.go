package interfaces

import (
	"context"

	"learnhub_checkout/internal/domain/entities"
)

// CheckoutSession is the handle of a hosted-checkout session.
type CheckoutSession struct {
	ID  string
	URL string
}

// GatewayPayment is the gateway's view of a payment, fetched when a webhook arrives.
type GatewayPayment struct {
	ID                string
	Status            string
	ExternalReference string
	// Amount is in minor units of Currency.
	Amount   int64
	Currency string
}

// ICheckoutGateway abstracts the hosted-checkout provider (Mercado Pago).
type ICheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, intent entities.PaymentIntent, course entities.Course) (CheckoutSession, error)
	GetPayment(ctx context.Context, paymentID string) (GatewayPayment, error)
}

package interfaces

import (
	"context"
	"errors"

	"learnhub_checkout/internal/domain/entities"
)

var (
	ErrIntentAlreadyExists = errors.New("payment intent already exists")
	ErrIntentNotFound      = errors.New("payment intent not found")
	// ErrIntentAlreadyTerminal is returned by CompareAndTransition when the intent left
	// the expected status for a terminal one. Callers treat it as a successful no-op.
	ErrIntentAlreadyTerminal = errors.New("payment intent already terminal")
	// ErrIntentStatusConflict is returned when the conditional write failed and the
	// stored status is neither the expected one nor terminal.
	ErrIntentStatusConflict = errors.New("payment intent status conflict")
)

// IPaymentIntentRepository is the payment ledger.
//
// Every status change goes through CompareAndTransition, a single conditional write:
// amounts and currencies are never rewritten.
type IPaymentIntentRepository interface {
	Insert(ctx context.Context, intent entities.PaymentIntent) error
	// GetByID returns a zero PaymentIntent (empty ID) when the intent does not exist.
	GetByID(ctx context.Context, id string) (entities.PaymentIntent, error)
	CompareAndTransition(ctx context.Context, id string, from, to entities.PaymentStatus, externalRef string) (entities.PaymentIntent, error)
	ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.PaymentIntent, error)
}

package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the class of every bad-input rejection.
	ErrValidation = errors.New("validation error")

	ErrInvalidBuyerID      = fmt.Errorf("%w: invalid buyer_id", ErrValidation)
	ErrInvalidCourseID     = fmt.Errorf("%w: invalid course_id", ErrValidation)
	ErrInvalidIntentID     = fmt.Errorf("%w: invalid intent_id", ErrValidation)
	ErrInvalidGateway      = fmt.Errorf("%w: invalid gateway", ErrValidation)
	ErrInvalidStatus       = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidOutcome      = fmt.Errorf("%w: unknown notification outcome", ErrValidation)
	ErrGatewayMismatch     = fmt.Errorf("%w: notification gateway does not match intent", ErrValidation)
	ErrUnsupportedCurrency = fmt.Errorf("%w: no exchange rate for currency pair", ErrValidation)
	// ErrAmountMismatch rejects a notification whose amount or currency differs from the
	// stored intent, whatever its signature says.
	ErrAmountMismatch = fmt.Errorf("%w: reported amount does not match intent", ErrValidation)

	ErrUnknownIntent        = errors.New("unknown payment intent")
	ErrSignatureInvalid     = errors.New("invalid notification signature")
	ErrAlreadyOwned         = errors.New("course already owned by buyer")
	ErrConcurrency          = errors.New("concurrent update of payment intent")
	ErrCourseNotPurchasable = errors.New("course not purchasable")
	ErrCheckoutUnavailable  = errors.New("checkout gateway unavailable")
)

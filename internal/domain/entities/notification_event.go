package entities

// NotificationOutcome is the canonical result a gateway reports for an intent.
type NotificationOutcome string

const (
	OutcomeSuccess     NotificationOutcome = "success"
	OutcomePending     NotificationOutcome = "pending"
	OutcomeFailed      NotificationOutcome = "failed"
	OutcomeCanceled    NotificationOutcome = "canceled"
	OutcomeChargedBack NotificationOutcome = "chargedback"
)

// NotificationEvent is the gateway-neutral shape every notification adapter produces.
// It is consumed once, synchronously, and never persisted.
type NotificationEvent struct {
	Gateway     Gateway
	ExternalRef string
	IntentID    string
	// Amount is in minor units of Currency.
	Amount   int64
	Currency string
	// OutcomeCode is the vendor status code exactly as received; it takes part in the
	// redirect gateway digest.
	OutcomeCode string
	Outcome     NotificationOutcome
	// Token is the authenticity token supplied by the gateway.
	Token string
	// SignedPayload holds the bytes covered by a webhook signature.
	SignedPayload []byte
}

package entities

import "time"

// Gateway identifies the payment channel an intent was opened on.
type Gateway string

const (
	GatewayRedirect Gateway = "redirect"
	GatewayCheckout Gateway = "checkout"
	GatewayBank     Gateway = "bank"
)

func (g Gateway) Valid() bool {
	switch g {
	case GatewayRedirect, GatewayCheckout, GatewayBank:
		return true
	}
	return false
}

// PaymentStatus is the lifecycle of a PaymentIntent.
//
// pending is the only non-terminal status. confirmed and failed are reached through
// notifications (or the bank-transfer admin action); expired only through an explicit
// expiry call from an external scheduler.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusExpired   PaymentStatus = "expired"
)

func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentStatusConfirmed, PaymentStatusFailed, PaymentStatusExpired:
		return true
	}
	return false
}

func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPending || s.Terminal()
}

// PaymentIntent is one purchase attempt of a course by a buyer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (status-index): status, created_at
//
// Amount/Currency are the listed price; SettlementAmount/SettlementCurrency are what the
// gateway is asked to collect. Both pairs are immutable after creation: stores only ever
// rewrite Status, ExternalRef and UpdatedAt.
type PaymentIntent struct {
	ID                 string        `json:"id"`
	BuyerID            string        `json:"buyer_id"`
	CourseID           string        `json:"course_id"`
	Amount             int64         `json:"amount"`
	Currency           string        `json:"currency"`
	SettlementAmount   int64         `json:"settlement_amount"`
	SettlementCurrency string        `json:"settlement_currency"`
	Gateway            Gateway       `json:"gateway"`
	Status             PaymentStatus `json:"status"`
	ExternalRef        string        `json:"external_ref,omitempty"`
	CheckoutSessionID  string        `json:"checkout_session_id,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

package response

import (
	"time"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase"
)

type IntentResponse struct {
	IntentID           string    `json:"intent_id"`
	BuyerID            string    `json:"buyer_id"`
	CourseID           string    `json:"course_id"`
	Amount             int64     `json:"amount"`
	Currency           string    `json:"currency"`
	SettlementAmount   int64     `json:"settlement_amount"`
	SettlementCurrency string    `json:"settlement_currency"`
	Gateway            string    `json:"gateway"`
	Status             string    `json:"status"`
	ExternalRef        string    `json:"external_ref,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromPaymentIntent(p entities.PaymentIntent) IntentResponse {
	return IntentResponse{
		IntentID:           p.ID,
		BuyerID:            p.BuyerID,
		CourseID:           p.CourseID,
		Amount:             p.Amount,
		Currency:           p.Currency,
		SettlementAmount:   p.SettlementAmount,
		SettlementCurrency: p.SettlementCurrency,
		Gateway:            string(p.Gateway),
		Status:             string(p.Status),
		ExternalRef:        p.ExternalRef,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromPaymentIntents(list []entities.PaymentIntent) []IntentResponse {
	out := make([]IntentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPaymentIntent(p))
	}
	return out
}

type RedirectLaunchResponse struct {
	ActionURL string            `json:"action_url"`
	Fields    map[string]string `json:"fields"`
}

type CheckoutLaunchResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type BankInstructionsResponse struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	Reference     string `json:"reference"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
}

// IntentLaunchResponse carries exactly one of redirect, checkout or bank.
type IntentLaunchResponse struct {
	Intent   IntentResponse            `json:"intent"`
	Redirect *RedirectLaunchResponse   `json:"redirect,omitempty"`
	Checkout *CheckoutLaunchResponse   `json:"checkout,omitempty"`
	Bank     *BankInstructionsResponse `json:"bank,omitempty"`
}

func FromIntentLaunch(l usecase.IntentLaunch) IntentLaunchResponse {
	res := IntentLaunchResponse{Intent: FromPaymentIntent(l.Intent)}
	if l.Redirect != nil {
		res.Redirect = &RedirectLaunchResponse{ActionURL: l.Redirect.ActionURL, Fields: l.Redirect.Fields}
	}
	if l.Checkout != nil {
		res.Checkout = &CheckoutLaunchResponse{SessionID: l.Checkout.ID, URL: l.Checkout.URL}
	}
	if l.Bank != nil {
		res.Bank = &BankInstructionsResponse{
			BankName:      l.Bank.BankName,
			AccountName:   l.Bank.AccountName,
			AccountNumber: l.Bank.AccountNumber,
			Reference:     l.Bank.Reference,
			Amount:        l.Bank.Amount,
			Currency:      l.Bank.Currency,
		}
	}
	return res
}

type NotificationResponse struct {
	IntentID     string `json:"intent_id,omitempty"`
	Status       string `json:"status,omitempty"`
	Duplicate    bool   `json:"duplicate"`
	GrantCreated bool   `json:"grant_created"`
	Ignored      bool   `json:"ignored,omitempty"`
}

func FromNotificationResult(r usecase.NotificationResult) NotificationResponse {
	return NotificationResponse{
		IntentID:     r.IntentID,
		Status:       string(r.Status),
		Duplicate:    r.Duplicate,
		GrantCreated: r.GrantCreated,
	}
}

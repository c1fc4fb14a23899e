// Package notification turns gateway callbacks into canonical NotificationEvents.
package notification

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/domain/signature"
)

var ErrMalformedNotification = errors.New("malformed notification")

// redirectOutcomes maps the redirect gateway's status_code values.
var redirectOutcomes = map[string]entities.NotificationOutcome{
	"2":  entities.OutcomeSuccess,
	"0":  entities.OutcomePending,
	"-1": entities.OutcomeCanceled,
	"-2": entities.OutcomeFailed,
	"-3": entities.OutcomeChargedBack,
}

// ParseRedirectForm reads the form the redirect gateway posts to the notify URL.
// The merchant id is not part of the event; the verifier digests its own.
func ParseRedirectForm(form url.Values) (entities.NotificationEvent, error) {
	intentID := strings.TrimSpace(form.Get("order_id"))
	if intentID == "" {
		return entities.NotificationEvent{}, fmt.Errorf("%w: missing order_id", ErrMalformedNotification)
	}

	code := strings.TrimSpace(form.Get("status_code"))
	outcome, ok := redirectOutcomes[code]
	if !ok {
		return entities.NotificationEvent{}, fmt.Errorf("%w: unknown status_code %q", ErrMalformedNotification, code)
	}

	currency := strings.ToUpper(strings.TrimSpace(form.Get("payhere_currency")))
	if currency == "" {
		return entities.NotificationEvent{}, fmt.Errorf("%w: missing payhere_currency", ErrMalformedNotification)
	}

	amount, err := signature.ParseAmount(form.Get("payhere_amount"), currency)
	if err != nil {
		return entities.NotificationEvent{}, fmt.Errorf("%w: %v", ErrMalformedNotification, err)
	}

	return entities.NotificationEvent{
		Gateway:     entities.GatewayRedirect,
		ExternalRef: strings.TrimSpace(form.Get("payment_id")),
		IntentID:    intentID,
		Amount:      amount,
		Currency:    currency,
		OutcomeCode: code,
		Outcome:     outcome,
		Token:       strings.TrimSpace(form.Get("md5sig")),
	}, nil
}

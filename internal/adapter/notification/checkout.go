package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/domain/signature"
	"learnhub_checkout/internal/usecase/interfaces"
)

const checkoutPaymentTopic = "payment"

var (
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrPaymentLookupFailed     = errors.New("payment lookup failed")
)

// checkoutOutcomes maps Mercado Pago payment statuses.
var checkoutOutcomes = map[string]entities.NotificationOutcome{
	"approved":     entities.OutcomeSuccess,
	"pending":      entities.OutcomePending,
	"in_process":   entities.OutcomePending,
	"authorized":   entities.OutcomePending,
	"in_mediation": entities.OutcomePending,
	"rejected":     entities.OutcomeFailed,
	"cancelled":    entities.OutcomeCanceled,
	"refunded":     entities.OutcomeCanceled,
	"charged_back": entities.OutcomeChargedBack,
}

// CheckoutWebhook is the hosted-checkout webhook as received.
type CheckoutWebhook struct {
	Type            string
	DataID          string
	SignatureHeader string
	RequestID       string
}

// CheckoutResolver authenticates a webhook and fetches the payment it refers to. The
// webhook body only carries a payment id, so the signature is checked before the
// gateway is called.
type CheckoutResolver struct {
	verifier *signature.Verifier
	gateway  interfaces.ICheckoutGateway
	logger   *slog.Logger
}

func NewCheckoutResolver(verifier *signature.Verifier, gateway interfaces.ICheckoutGateway, logger *slog.Logger) *CheckoutResolver {
	return &CheckoutResolver{verifier: verifier, gateway: gateway, logger: logger}
}

// Resolve returns ignored=true for topics other than payments.
func (r *CheckoutResolver) Resolve(ctx context.Context, hook CheckoutWebhook) (event entities.NotificationEvent, ignored bool, err error) {
	if topic := strings.TrimSpace(hook.Type); topic != "" && topic != checkoutPaymentTopic {
		return entities.NotificationEvent{}, true, nil
	}
	dataID := strings.TrimSpace(hook.DataID)
	if dataID == "" {
		return entities.NotificationEvent{}, false, fmt.Errorf("%w: missing data.id", ErrMalformedNotification)
	}

	sig, err := signature.ParseCheckoutSignatureHeader(hook.SignatureHeader)
	if err != nil {
		return entities.NotificationEvent{}, false, err
	}
	event = entities.NotificationEvent{
		Gateway:       entities.GatewayCheckout,
		ExternalRef:   dataID,
		Token:         sig.V1,
		SignedPayload: signature.CheckoutManifest(dataID, strings.TrimSpace(hook.RequestID), sig.Timestamp),
	}

	ok, err := r.verifier.Verify(entities.GatewayCheckout, event)
	if err != nil {
		return entities.NotificationEvent{}, false, err
	}
	if !ok {
		r.logger.WarnContext(ctx, "[checkout][notification] webhook signature mismatch", "data_id", dataID)
		return entities.NotificationEvent{}, false, ErrInvalidWebhookSignature
	}

	if r.gateway == nil {
		return entities.NotificationEvent{}, false, fmt.Errorf("%w: checkout gateway not configured", ErrPaymentLookupFailed)
	}
	p, err := r.gateway.GetPayment(ctx, dataID)
	if err != nil {
		r.logger.ErrorContext(ctx, "[checkout][notification] payment lookup failed", "data_id", dataID, "err", err)
		return entities.NotificationEvent{}, false, fmt.Errorf("%w: %v", ErrPaymentLookupFailed, err)
	}

	outcome, known := checkoutOutcomes[strings.ToLower(p.Status)]
	if !known {
		return entities.NotificationEvent{}, false, fmt.Errorf("%w: unknown payment status %q", ErrMalformedNotification, p.Status)
	}
	event.IntentID = strings.TrimSpace(p.ExternalReference)
	event.Amount = p.Amount
	event.Currency = strings.ToUpper(p.Currency)
	event.OutcomeCode = p.Status
	event.Outcome = outcome
	if event.IntentID == "" {
		return entities.NotificationEvent{}, false, fmt.Errorf("%w: payment carries no external reference", ErrMalformedNotification)
	}
	return event, false, nil
}

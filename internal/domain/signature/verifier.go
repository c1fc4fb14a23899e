// Package signature computes and checks gateway authenticity tokens.
//
// Everything here is pure: no I/O, no clock, no shared state.
package signature

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"learnhub_checkout/internal/domain/entities"
)

var (
	// ErrMalformedSignature is a hard verification failure: the token or the signed
	// payload cannot be interpreted at all. It is distinct from a plain mismatch.
	ErrMalformedSignature = errors.New("malformed signature")
	ErrUnsignedGateway    = errors.New("gateway carries no signature")
	ErrUnknownGateway     = errors.New("unknown gateway")
)

// Config carries the secrets the verifier needs. It is copied into the Verifier.
type Config struct {
	RedirectMerchantID     string
	RedirectMerchantSecret string
	CheckoutWebhookSecret  string
}

type Verifier struct {
	merchantID            string
	hashedSecret          string
	checkoutWebhookSecret []byte
}

func NewVerifier(cfg Config) *Verifier {
	return &Verifier{
		merchantID:            cfg.RedirectMerchantID,
		hashedSecret:          upperMD5(cfg.RedirectMerchantSecret),
		checkoutWebhookSecret: []byte(cfg.CheckoutWebhookSecret),
	}
}

// Verify reports whether event carries a valid token for gateway.
//
// (false, nil) is a negative result. A non-nil error is a hard failure and callers must
// not run any business logic for the event.
func (v *Verifier) Verify(gateway entities.Gateway, event entities.NotificationEvent) (bool, error) {
	switch gateway {
	case entities.GatewayRedirect:
		return v.verifyRedirect(event), nil
	case entities.GatewayCheckout:
		return v.verifyCheckout(event)
	case entities.GatewayBank:
		return false, ErrUnsignedGateway
	default:
		return false, ErrUnknownGateway
	}
}

// SignRedirect returns the hash sent along with the outbound redirect launch form.
func (v *Verifier) SignRedirect(intentID string, amount int64, currency string) string {
	return upperMD5(v.merchantID + intentID + FormatAmount(amount, currency) + currency + v.hashedSecret)
}

// RedirectDigest is the value the redirect gateway is expected to send back for a
// notification. Exposed so the sandbox and tests can build valid notifications.
func (v *Verifier) RedirectDigest(intentID string, amount int64, currency, outcomeCode string) string {
	return upperMD5(v.merchantID + intentID + FormatAmount(amount, currency) + currency + outcomeCode + v.hashedSecret)
}

func (v *Verifier) verifyRedirect(event entities.NotificationEvent) bool {
	expected := v.RedirectDigest(event.IntentID, event.Amount, event.Currency, event.OutcomeCode)
	got := strings.ToUpper(strings.TrimSpace(event.Token))
	// Compare fixed-size digests so the path does not depend on the token length.
	expectedSum := sha256.Sum256([]byte(expected))
	gotSum := sha256.Sum256([]byte(got))
	return subtle.ConstantTimeCompare(expectedSum[:], gotSum[:]) == 1
}

func (v *Verifier) verifyCheckout(event entities.NotificationEvent) (bool, error) {
	if len(v.checkoutWebhookSecret) == 0 {
		return false, fmt.Errorf("%w: webhook secret not configured", ErrMalformedSignature)
	}
	if len(event.SignedPayload) == 0 {
		return false, fmt.Errorf("%w: empty signed payload", ErrMalformedSignature)
	}
	got, err := hex.DecodeString(strings.TrimSpace(event.Token))
	if err != nil || len(got) != sha256.Size {
		return false, fmt.Errorf("%w: token is not a sha256 hex digest", ErrMalformedSignature)
	}
	return hmac.Equal(v.SignCheckout(event.SignedPayload), got), nil
}

// SignCheckout computes the raw HMAC-SHA256 of payload with the webhook secret.
func (v *Verifier) SignCheckout(payload []byte) []byte {
	mac := hmac.New(sha256.New, v.checkoutWebhookSecret)
	mac.Write(payload)
	return mac.Sum(nil)
}

func upperMD5(s string) string {
	sum := md5.Sum([]byte(s))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

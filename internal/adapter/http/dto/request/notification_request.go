package request

import (
	"encoding/json"
	"strings"
)

// CheckoutWebhookRequest is the hosted-checkout webhook body. Older deliveries only
// carry the payment id in the query string (?type=payment&data.id=...).
type CheckoutWebhookRequest struct {
	Type   string          `json:"type"`
	Action string          `json:"action"`
	Data   CheckoutWebhook `json:"data"`
}

type CheckoutWebhook struct {
	// ID arrives as a JSON string or number depending on the API version.
	ID json.RawMessage `json:"id"`
}

func (r CheckoutWebhookRequest) ResolveDataID(queryID string) string {
	if id := strings.Trim(strings.TrimSpace(string(r.Data.ID)), `"`); id != "" && id != "null" {
		return id
	}
	return strings.TrimSpace(queryID)
}

func (r CheckoutWebhookRequest) ResolveType(queryType string) string {
	if t := strings.TrimSpace(r.Type); t != "" {
		return t
	}
	if t := strings.TrimSpace(queryType); t != "" {
		return t
	}
	// "payment.updated"
	topic, _, _ := strings.Cut(strings.TrimSpace(r.Action), ".")
	return topic
}

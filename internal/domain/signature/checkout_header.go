package signature

import (
	"fmt"
	"strings"
)

// CheckoutSignature is the parsed form of the hosted-checkout x-signature header
// ("ts=1704908010,v1=618c85...").
type CheckoutSignature struct {
	Timestamp string
	V1        string
}

func ParseCheckoutSignatureHeader(header string) (CheckoutSignature, error) {
	var sig CheckoutSignature
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			sig.Timestamp = strings.TrimSpace(value)
		case "v1":
			sig.V1 = strings.TrimSpace(value)
		}
	}
	if sig.Timestamp == "" || sig.V1 == "" {
		return CheckoutSignature{}, fmt.Errorf("%w: x-signature must carry ts and v1", ErrMalformedSignature)
	}
	return sig, nil
}

// CheckoutManifest builds the string the hosted-checkout gateway signs.
// Empty parts are omitted, as the gateway does.
func CheckoutManifest(dataID, requestID, ts string) []byte {
	var b strings.Builder
	if dataID != "" {
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	if ts != "" {
		b.WriteString("ts:" + ts + ";")
	}
	return []byte(b.String())
}

package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnhub_checkout/internal/config"
	"learnhub_checkout/internal/domain/signature"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAdminToken    = "admin-token"
	testWebhookSecret = "webhook-secret"
)

func testConfig() config.Config {
	return config.Config{
		Storage: config.Storage{Driver: config.StorageMemory},
		Gateways: config.Gateways{
			Redirect: config.RedirectGateway{MerchantID: "1211149", MerchantSecret: "secret", CheckoutURL: "https://sandbox.payhere.lk/pay/checkout", SettlementCurrency: "LKR"},
			Checkout: config.CheckoutGateway{WebhookSecret: testWebhookSecret, SettlementCurrency: "USD", Mock: true},
			Bank:     config.BankGateway{BankName: "Acme Bank", AccountName: "LearnHub", AccountNumber: "0001", SettlementCurrency: "LKR"},
		},
		Currency:    config.Currency{Rates: map[string]float64{"USD_LKR": 300}},
		Admin:       config.Admin{Token: testAdminToken},
		SideEffects: config.SideEffects{TimeoutMs: 1000, Parallelism: 2},
	}
}

type client struct {
	t      *testing.T
	router *gin.Engine
}

func (c client) do(method, path, body string, header http.Header) (int, map[string]any) {
	c.t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func admin() http.Header {
	return http.Header{"Authorization": {"Bearer " + testAdminToken}}
}

func newTestApp(t *testing.T) (*app, client) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	a, err := newApp(context.Background(), testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(a.close)
	return a, client{t: t, router: a.router}
}

func publishedCourse(t *testing.T, c client) string {
	t.Helper()
	code, course := c.do(http.MethodPost, "/v1/courses", `{"title":"Go in practice","price":5000,"currency":"USD"}`, admin())
	require.Equal(t, http.StatusCreated, code)
	id := course["course_id"].(string)

	code, _ = c.do(http.MethodPatch, "/v1/courses/"+id+"/publish", "", admin())
	require.Equal(t, http.StatusOK, code)
	return id
}

func TestApp_BankTransferPurchase(t *testing.T) {
	_, c := newTestApp(t)
	courseID := publishedCourse(t, c)

	code, launch := c.do(http.MethodPost, "/v1/checkout/intents", `{"buyer_id":"buyer-1","course_id":"`+courseID+`","gateway":"bank"}`, nil)
	require.Equal(t, http.StatusCreated, code)
	intent := launch["intent"].(map[string]any)
	intentID := intent["intent_id"].(string)
	assert.Equal(t, "LKR", intent["settlement_currency"])
	assert.EqualValues(t, 1500000, intent["settlement_amount"])
	assert.Equal(t, intentID, launch["bank"].(map[string]any)["reference"])

	code, _ = c.do(http.MethodPost, "/v1/admin/intents/"+intentID+"/bank-confirmation", `{"admin_id":"ops-1","reference":"STMT-9"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, result := c.do(http.MethodPost, "/v1/admin/intents/"+intentID+"/bank-confirmation", `{"admin_id":"ops-1","reference":"STMT-9"}`, admin())
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, result["grant_created"])

	code, result = c.do(http.MethodPost, "/v1/admin/intents/"+intentID+"/bank-confirmation", `{"admin_id":"ops-1","reference":"STMT-9"}`, admin())
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, result["duplicate"])

	req := httptest.NewRequest(http.MethodGet, "/v1/buyers/buyer-1/grants", nil)
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), courseID)

	code, _ = c.do(http.MethodPost, "/v1/checkout/intents", `{"buyer_id":"buyer-1","course_id":"`+courseID+`","gateway":"bank"}`, nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestApp_CheckoutMockPurchase(t *testing.T) {
	_, c := newTestApp(t)
	courseID := publishedCourse(t, c)

	code, launch := c.do(http.MethodPost, "/v1/checkout/intents", `{"buyer_id":"buyer-2","course_id":"`+courseID+`","gateway":"checkout"}`, nil)
	require.Equal(t, http.StatusCreated, code)
	intentID := launch["intent"].(map[string]any)["intent_id"].(string)
	require.NotNil(t, launch["checkout"])

	// Mock sessions use the intent id as payment id.
	verifier := signature.NewVerifier(signature.Config{CheckoutWebhookSecret: testWebhookSecret})
	ts := "1704908010"
	mac := verifier.SignCheckout(signature.CheckoutManifest(intentID, "req-1", ts))
	header := http.Header{
		"X-Signature":  {"ts=" + ts + ",v1=" + hex.EncodeToString(mac)},
		"X-Request-Id": {"req-1"},
	}
	body := `{"type":"payment","action":"payment.updated","data":{"id":"` + intentID + `"}}`

	code, result := c.do(http.MethodPost, "/v1/notifications/checkout", body, header)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "confirmed", result["status"])
	assert.Equal(t, true, result["grant_created"])

	code, result = c.do(http.MethodPost, "/v1/notifications/checkout", body, header)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, result["duplicate"])

	code, _ = c.do(http.MethodGet, "/v1/notifications/checkout", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, code)
}

package handlers

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"learnhub_checkout/internal/adapter/http/handlers/mocks"
	"learnhub_checkout/internal/adapter/notification"
	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/domain/signature"
	"learnhub_checkout/internal/usecase"
	"learnhub_checkout/internal/usecase/interfaces"
	mock_interfaces "learnhub_checkout/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newNotificationRouter(t *testing.T) (*gin.Engine, *mocks.MockIFulfillmentUseCase, *mock_interfaces.MockICheckoutGateway, *signature.Verifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFulfillmentUseCase(ctrl)
	gw := mock_interfaces.NewMockICheckoutGateway(ctrl)
	v := signature.NewVerifier(signature.Config{RedirectMerchantID: "1211149", RedirectMerchantSecret: "s", CheckoutWebhookSecret: "webhook-secret"})
	h := NewNotificationHandler(uc, notification.NewCheckoutResolver(v, gw, slog.New(slog.NewTextHandler(io.Discard, nil))))

	r := gin.New()
	r.POST("/v1/notifications/redirect", h.RedirectNotification)
	r.POST("/v1/notifications/checkout", h.CheckoutNotification)
	return r, uc, gw, v
}

func redirectForm() url.Values {
	return url.Values{
		"merchant_id":      {"1211149"},
		"order_id":         {"pi-1"},
		"payment_id":       {"320025071278"},
		"payhere_amount":   {"15000.00"},
		"payhere_currency": {"LKR"},
		"status_code":      {"2"},
		"md5sig":           {"SIG"},
	}
}

func postForm(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/notifications/redirect", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNotificationHandler_Redirect(t *testing.T) {
	t.Run("passes the canonical event", func(t *testing.T) {
		r, uc, _, _ := newNotificationRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.NotificationEvent) (usecase.NotificationResult, error) {
				if e.IntentID != "pi-1" || e.Amount != 1500000 || e.Outcome != entities.OutcomeSuccess || e.Token != "SIG" {
					t.Fatalf("unexpected event: %+v", e)
				}
				return usecase.NotificationResult{IntentID: "pi-1", Status: entities.PaymentStatusConfirmed, GrantCreated: true}, nil
			})

		w := postForm(r, redirectForm())
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("duplicate is 200", func(t *testing.T) {
		r, uc, _, _ := newNotificationRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).Return(usecase.NotificationResult{IntentID: "pi-1", Status: entities.PaymentStatusConfirmed, Duplicate: true}, nil)

		w := postForm(r, redirectForm())
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"duplicate":true`)) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("malformed form never reaches the usecase", func(t *testing.T) {
		r, _, _, _ := newNotificationRouter(t)
		form := redirectForm()
		form.Set("status_code", "9")

		w := postForm(r, form)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase errors are mapped", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{usecase.ErrSignatureInvalid, http.StatusUnauthorized},
			{usecase.ErrUnknownIntent, http.StatusNotFound},
			{usecase.ErrAmountMismatch, http.StatusUnprocessableEntity},
			{usecase.ErrGatewayMismatch, http.StatusBadRequest},
			{usecase.ErrConcurrency, http.StatusServiceUnavailable},
		}
		for _, tc := range cases {
			r, uc, _, _ := newNotificationRouter(t)
			uc.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).Return(usecase.NotificationResult{}, tc.err)

			w := postForm(r, redirectForm())
			if w.Code != tc.code {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, w.Code)
			}
		}
	})
}

func signedCheckoutRequest(v *signature.Verifier, body, dataID, requestID string) *http.Request {
	ts := "1704908010"
	mac := v.SignCheckout(signature.CheckoutManifest(dataID, requestID, ts))
	req := httptest.NewRequest(http.MethodPost, "/v1/notifications/checkout", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-signature", fmt.Sprintf("ts=%s,v1=%s", ts, hex.EncodeToString(mac)))
	req.Header.Set("x-request-id", requestID)
	return req
}

func TestNotificationHandler_Checkout(t *testing.T) {
	t.Run("verified webhook is resolved and handled", func(t *testing.T) {
		r, uc, gw, v := newNotificationRouter(t)
		gw.EXPECT().GetPayment(gomock.Any(), "98765").Return(interfaces.GatewayPayment{
			ID: "98765", Status: "approved", ExternalReference: "pi-1", Amount: 5000, Currency: "USD",
		}, nil)
		uc.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.NotificationEvent) (usecase.NotificationResult, error) {
				if e.Gateway != entities.GatewayCheckout || e.IntentID != "pi-1" || e.ExternalRef != "98765" {
					t.Fatalf("unexpected event: %+v", e)
				}
				return usecase.NotificationResult{IntentID: "pi-1", Status: entities.PaymentStatusConfirmed, GrantCreated: true}, nil
			})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, signedCheckoutRequest(v, `{"type":"payment","action":"payment.updated","data":{"id":"98765"}}`, "98765", "req-1"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("query string fallback", func(t *testing.T) {
		r, uc, gw, v := newNotificationRouter(t)
		gw.EXPECT().GetPayment(gomock.Any(), "555").Return(interfaces.GatewayPayment{
			ID: "555", Status: "pending", ExternalReference: "pi-2", Amount: 5000, Currency: "USD",
		}, nil)
		uc.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).Return(usecase.NotificationResult{IntentID: "pi-2", Status: entities.PaymentStatusPending}, nil)

		req := signedCheckoutRequest(v, "", "555", "req-2")
		req.URL.RawQuery = "type=payment&data.id=555"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("bad signature is 401 without a payment lookup", func(t *testing.T) {
		r, _, _, v := newNotificationRouter(t)

		req := signedCheckoutRequest(v, `{"type":"payment","data":{"id":"98765"}}`, "11111", "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}

		req = signedCheckoutRequest(v, `{"type":"payment","data":{"id":"98765"}}`, "98765", "req-1")
		req.Header.Set("x-signature", "nonsense")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for malformed header, got %d", w.Code)
		}
	})

	t.Run("other topics are acknowledged", func(t *testing.T) {
		r, _, _, v := newNotificationRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, signedCheckoutRequest(v, `{"type":"merchant_order","data":{"id":"1"}}`, "1", ""))
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"ignored":true`)) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})
}

package usecase

import (
	"context"
	"encoding/hex"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"learnhub_checkout/internal/adapter/persistence/inmemory"
	"learnhub_checkout/internal/domain/currency"
	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/domain/signature"
	"learnhub_checkout/internal/usecase/interfaces"
)

const (
	testMerchantID     = "1211149"
	testMerchantSecret = "merchant-secret"
	testWebhookSecret  = "webhook-secret"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testVerifier() *signature.Verifier {
	return signature.NewVerifier(signature.Config{
		RedirectMerchantID:     testMerchantID,
		RedirectMerchantSecret: testMerchantSecret,
		CheckoutWebhookSecret:  testWebhookSecret,
	})
}

func testFulfillmentConfig() FulfillmentConfig {
	return FulfillmentConfig{
		SettlementCurrencies: map[entities.Gateway]string{
			entities.GatewayRedirect: "LKR",
			entities.GatewayCheckout: "USD",
			entities.GatewayBank:     "LKR",
		},
		Redirect: RedirectLaunchConfig{
			MerchantID:  testMerchantID,
			CheckoutURL: "https://sandbox.redirect.test/pay/checkout",
			ReturnURL:   "https://learnhub.test/return",
			CancelURL:   "https://learnhub.test/cancel",
			NotifyURL:   "https://learnhub.test/v1/notifications/redirect",
		},
		Bank: BankAccountConfig{BankName: "Test Bank", AccountName: "LearnHub", AccountNumber: "0001"},
	}
}

// recordingDispatcher captures tasks synchronously.
type recordingDispatcher struct {
	mu    sync.Mutex
	tasks []FulfillmentTask
}

func (d *recordingDispatcher) Dispatch(task FulfillmentTask) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tasks = append(d.tasks, task)
}

func (d *recordingDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.tasks)
}

type harness struct {
	uc         *FulfillmentUseCase
	intents    *inmemory.PaymentIntentRepository
	grants     *inmemory.AccessGrantRepository
	courses    *inmemory.CourseRepository
	verifier   *signature.Verifier
	dispatcher *recordingDispatcher
}

func newHarness(t *testing.T, checkout interfaces.ICheckoutGateway, cfg FulfillmentConfig) *harness {
	t.Helper()
	h := &harness{
		intents:    inmemory.NewPaymentIntentRepository(),
		grants:     inmemory.NewAccessGrantRepository(),
		courses:    inmemory.NewCourseRepository(),
		verifier:   testVerifier(),
		dispatcher: &recordingDispatcher{},
	}
	logger := discardLogger()
	h.uc = NewFulfillmentUseCase(FulfillmentDeps{
		Intents:    h.intents,
		Grants:     h.grants,
		Courses:    h.courses,
		Checkout:   checkout,
		Verifier:   h.verifier,
		Normalizer: currency.NewNormalizer(map[string]float64{"USD_LKR": 300, "USD_JPY": 150}),
		Granter:    NewAccessGranter(h.grants, h.dispatcher, logger),
		Logger:     logger,
	}, cfg)

	now := time.Now().UTC()
	_, err := h.courses.Create(context.Background(), entities.Course{
		ID: "course-1", Title: "Concurrency in Go", Price: 5000, Currency: "USD",
		Status: entities.CourseStatusPublished, CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return h
}

// redirectEvent builds a correctly signed redirect notification for intent.
func (h *harness) redirectEvent(intent entities.PaymentIntent, statusCode string, outcome entities.NotificationOutcome) entities.NotificationEvent {
	return entities.NotificationEvent{
		Gateway:     entities.GatewayRedirect,
		ExternalRef: "320025071",
		IntentID:    intent.ID,
		Amount:      intent.SettlementAmount,
		Currency:    intent.SettlementCurrency,
		OutcomeCode: statusCode,
		Outcome:     outcome,
		Token:       h.verifier.RedirectDigest(intent.ID, intent.SettlementAmount, intent.SettlementCurrency, statusCode),
	}
}

// checkoutEvent builds a correctly signed hosted-checkout notification for intent.
func (h *harness) checkoutEvent(intent entities.PaymentIntent, outcome entities.NotificationOutcome) entities.NotificationEvent {
	payload := signature.CheckoutManifest("123456", "req-1", "1704908010")
	return entities.NotificationEvent{
		Gateway:       entities.GatewayCheckout,
		ExternalRef:   "123456",
		IntentID:      intent.ID,
		Amount:        intent.SettlementAmount,
		Currency:      intent.SettlementCurrency,
		Outcome:       outcome,
		Token:         hex.EncodeToString(h.verifier.SignCheckout(payload)),
		SignedPayload: payload,
	}
}

func (h *harness) createIntent(t *testing.T, gateway entities.Gateway) entities.PaymentIntent {
	t.Helper()
	launch, err := h.uc.CreateIntent(context.Background(), CreateIntentCommand{BuyerID: "buyer-1", CourseID: "course-1", Gateway: gateway})
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}
	return launch.Intent
}

func (h *harness) intent(t *testing.T, id string) entities.PaymentIntent {
	t.Helper()
	got, err := h.intents.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get intent: %v", err)
	}
	return got
}

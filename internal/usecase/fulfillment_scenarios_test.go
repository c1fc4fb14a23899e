package usecase

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"

	"learnhub_checkout/internal/adapter/notification"
	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase/interfaces"
)

func TestFulfillment_RedirectSuccessAndReplay(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil, testFulfillmentConfig())
	intent := h.createIntent(t, entities.GatewayRedirect)

	if intent.SettlementAmount != 1500000 || intent.SettlementCurrency != "LKR" {
		t.Fatalf("unexpected settlement: %d %s", intent.SettlementAmount, intent.SettlementCurrency)
	}

	event := h.redirectEvent(intent, "2", entities.OutcomeSuccess)
	res, err := h.uc.HandleNotification(ctx, event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.PaymentStatusConfirmed || res.Duplicate || !res.GrantCreated {
		t.Fatalf("unexpected result: %+v", res)
	}
	stored := h.intent(t, intent.ID)
	if stored.Status != entities.PaymentStatusConfirmed || stored.ExternalRef != "320025071" {
		t.Fatalf("unexpected stored intent: %+v", stored)
	}
	grant, _ := h.grants.GetGrant(ctx, "buyer-1", "course-1")
	if grant.IntentID != intent.ID {
		t.Fatalf("expected grant from %s, got %+v", intent.ID, grant)
	}

	replay, err := h.uc.HandleNotification(ctx, event)
	if err != nil {
		t.Fatalf("unexpected replay error: %v", err)
	}
	if !replay.Duplicate || replay.GrantCreated || replay.Status != entities.PaymentStatusConfirmed {
		t.Fatalf("unexpected replay result: %+v", replay)
	}
	if h.dispatcher.count() != 1 {
		t.Fatalf("expected one fulfillment dispatch, got %d", h.dispatcher.count())
	}
}

func TestFulfillment_InvalidSignatureFailsIntent(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil, testFulfillmentConfig())
	intent := h.createIntent(t, entities.GatewayRedirect)

	event := h.redirectEvent(intent, "2", entities.OutcomeSuccess)
	event.Token = "00000000000000000000000000000000"

	_, err := h.uc.HandleNotification(ctx, event)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
	if got := h.intent(t, intent.ID); got.Status != entities.PaymentStatusFailed {
		t.Fatalf("expected failed intent, got %s", got.Status)
	}
	if grant, _ := h.grants.GetGrant(ctx, "buyer-1", "course-1"); grant.IntentID != "" {
		t.Fatalf("expected no grant, got %+v", grant)
	}
}

func TestFulfillment_AmountMismatchFailsIntent(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil, testFulfillmentConfig())
	intent := h.createIntent(t, entities.GatewayRedirect)

	// Correctly signed, but for a smaller amount.
	tampered := intent
	tampered.SettlementAmount = 100
	event := h.redirectEvent(tampered, "2", entities.OutcomeSuccess)

	_, err := h.uc.HandleNotification(ctx, event)
	if !errors.Is(err, ErrAmountMismatch) {
		t.Fatalf("expected ErrAmountMismatch, got %v", err)
	}
	if got := h.intent(t, intent.ID); got.Status != entities.PaymentStatusFailed {
		t.Fatalf("expected failed intent, got %s", got.Status)
	}
	if grant, _ := h.grants.GetGrant(ctx, "buyer-1", "course-1"); grant.IntentID != "" {
		t.Fatalf("expected no grant, got %+v", grant)
	}
}

func TestFulfillment_CurrencyMismatchFailsIntent(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil, testFulfillmentConfig())
	intent := h.createIntent(t, entities.GatewayRedirect)

	tampered := intent
	tampered.SettlementCurrency = "USD"
	_, err := h.uc.HandleNotification(ctx, h.redirectEvent(tampered, "2", entities.OutcomeSuccess))
	if !errors.Is(err, ErrAmountMismatch) {
		t.Fatalf("expected ErrAmountMismatch, got %v", err)
	}
}

func TestFulfillment_ConcurrentDuplicateDeliveries(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil, testFulfillmentConfig())
	intent := h.createIntent(t, entities.GatewayRedirect)
	event := h.redirectEvent(intent, "2", entities.OutcomeSuccess)

	const deliveries = 20
	results := make([]NotificationResult, deliveries)
	errs := make([]error, deliveries)
	var wg sync.WaitGroup
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = h.uc.HandleNotification(ctx, event)
		}(i)
	}
	wg.Wait()

	applied := 0
	for i := range results {
		if errs[i] != nil {
			t.Fatalf("delivery %d failed: %v", i, errs[i])
		}
		if results[i].Status != entities.PaymentStatusConfirmed {
			t.Fatalf("delivery %d saw status %s", i, results[i].Status)
		}
		if !results[i].Duplicate {
			applied++
		}
	}
	if applied != 1 {
		t.Fatalf("expected exactly one applied delivery, got %d", applied)
	}
	grants, _ := h.grants.ListByBuyer(ctx, "buyer-1")
	if len(grants) != 1 {
		t.Fatalf("expected one grant, got %d", len(grants))
	}
	if h.dispatcher.count() != 1 {
		t.Fatalf("expected one fulfillment dispatch, got %d", h.dispatcher.count())
	}
}

func TestFulfillment_AlreadyOwnedCreatesNoIntent(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil, testFulfillmentConfig())
	intent := h.createIntent(t, entities.GatewayRedirect)
	if _, err := h.uc.HandleNotification(ctx, h.redirectEvent(intent, "2", entities.OutcomeSuccess)); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	_, err := h.uc.CreateIntent(ctx, CreateIntentCommand{BuyerID: "buyer-1", CourseID: "course-1", Gateway: entities.GatewayBank})
	if !errors.Is(err, ErrAlreadyOwned) {
		t.Fatalf("expected ErrAlreadyOwned, got %v", err)
	}
	pending, _ := h.intents.ListByStatus(ctx, entities.PaymentStatusPending)
	if len(pending) != 0 {
		t.Fatalf("expected no new pending intent, got %d", len(pending))
	}
}

func TestFulfillment_TerminalIntentIgnoresLaterOutcomes(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil, testFulfillmentConfig())
	intent := h.createIntent(t, entities.GatewayRedirect)

	if _, err := h.uc.HandleNotification(ctx, h.redirectEvent(intent, "-2", entities.OutcomeFailed)); err != nil {
		t.Fatalf("fail: %v", err)
	}
	res, err := h.uc.HandleNotification(ctx, h.redirectEvent(intent, "2", entities.OutcomeSuccess))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Duplicate || res.Status != entities.PaymentStatusFailed {
		t.Fatalf("expected duplicate on failed intent, got %+v", res)
	}
	if grant, _ := h.grants.GetGrant(ctx, "buyer-1", "course-1"); grant.IntentID != "" {
		t.Fatalf("expected no grant, got %+v", grant)
	}

	forged := h.redirectEvent(intent, "2", entities.OutcomeSuccess)
	forged.Token = "bad"
	if _, err := h.uc.HandleNotification(ctx, forged); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
	if got := h.intent(t, intent.ID); got.Status != entities.PaymentStatusFailed {
		t.Fatalf("terminal intent mutated: %s", got.Status)
	}
}

func TestFulfillment_PendingOutcomeKeepsIntentPending(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil, testFulfillmentConfig())
	intent := h.createIntent(t, entities.GatewayRedirect)

	res, err := h.uc.HandleNotification(ctx, h.redirectEvent(intent, "0", entities.OutcomePending))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.PaymentStatusPending || res.Duplicate {
		t.Fatalf("unexpected result: %+v", res)
	}
	if got := h.intent(t, intent.ID); got.Status != entities.PaymentStatusPending {
		t.Fatalf("expected pending, got %s", got.Status)
	}
}

func TestFulfillment_UnknownIntentAndGatewayMismatch(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil, testFulfillmentConfig())

	ghost := entities.PaymentIntent{ID: "ghost", SettlementAmount: 100, SettlementCurrency: "LKR"}
	if _, err := h.uc.HandleNotification(ctx, h.redirectEvent(ghost, "2", entities.OutcomeSuccess)); !errors.Is(err, ErrUnknownIntent) {
		t.Fatalf("expected ErrUnknownIntent, got %v", err)
	}

	bank := h.createIntent(t, entities.GatewayBank)
	if _, err := h.uc.HandleNotification(ctx, h.redirectEvent(bank, "2", entities.OutcomeSuccess)); !errors.Is(err, ErrGatewayMismatch) {
		t.Fatalf("expected ErrGatewayMismatch, got %v", err)
	}
	if got := h.intent(t, bank.ID); got.Status != entities.PaymentStatusPending {
		t.Fatalf("bank intent mutated: %s", got.Status)
	}
}

type stubCheckout struct {
	err error
}

func (s stubCheckout) CreateCheckoutSession(_ context.Context, intent entities.PaymentIntent, _ entities.Course) (interfaces.CheckoutSession, error) {
	if s.err != nil {
		return interfaces.CheckoutSession{}, s.err
	}
	return interfaces.CheckoutSession{ID: "pref-" + intent.ID, URL: "https://checkout.test/" + intent.ID}, nil
}

func (s stubCheckout) GetPayment(context.Context, string) (interfaces.GatewayPayment, error) {
	return interfaces.GatewayPayment{}, errors.New("not used")
}

func TestFulfillment_CheckoutFlow(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, stubCheckout{}, testFulfillmentConfig())

	launch, err := h.uc.CreateIntent(ctx, CreateIntentCommand{BuyerID: "buyer-1", CourseID: "course-1", Gateway: entities.GatewayCheckout})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if launch.Checkout == nil || launch.Checkout.URL == "" {
		t.Fatalf("expected checkout session, got %+v", launch)
	}
	if launch.Intent.CheckoutSessionID != "pref-"+launch.Intent.ID {
		t.Fatalf("session id not stored: %+v", launch.Intent)
	}
	if launch.Intent.SettlementAmount != 5000 || launch.Intent.SettlementCurrency != "USD" {
		t.Fatalf("unexpected settlement: %+v", launch.Intent)
	}

	malformed := h.checkoutEvent(launch.Intent, entities.OutcomeSuccess)
	malformed.Token = "not-hex"
	if _, err := h.uc.HandleNotification(ctx, malformed); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
	if got := h.intent(t, launch.Intent.ID); got.Status != entities.PaymentStatusPending {
		t.Fatalf("malformed signature must not touch the intent, got %s", got.Status)
	}

	res, err := h.uc.HandleNotification(ctx, h.checkoutEvent(launch.Intent, entities.OutcomeSuccess))
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if res.Status != entities.PaymentStatusConfirmed || !res.GrantCreated {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestFulfillment_CheckoutSessionFailureStoresNothing(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, stubCheckout{err: errors.New("gateway down")}, testFulfillmentConfig())

	_, err := h.uc.CreateIntent(ctx, CreateIntentCommand{BuyerID: "buyer-1", CourseID: "course-1", Gateway: entities.GatewayCheckout})
	if !errors.Is(err, ErrCheckoutUnavailable) {
		t.Fatalf("expected ErrCheckoutUnavailable, got %v", err)
	}
	pending, _ := h.intents.ListByStatus(ctx, entities.PaymentStatusPending)
	if len(pending) != 0 {
		t.Fatalf("expected no stored intent, got %d", len(pending))
	}
}

func TestFulfillment_BankTransfer(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil, testFulfillmentConfig())

	launch, err := h.uc.CreateIntent(ctx, CreateIntentCommand{BuyerID: "buyer-1", CourseID: "course-1", Gateway: entities.GatewayBank})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if launch.Bank == nil || launch.Bank.Reference != launch.Intent.ID || launch.Bank.Amount != 1500000 {
		t.Fatalf("unexpected bank instructions: %+v", launch.Bank)
	}

	res, err := h.uc.ConfirmBankTransfer(ctx, launch.Intent.ID, "admin-7", "")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if res.Status != entities.PaymentStatusConfirmed || !res.GrantCreated {
		t.Fatalf("unexpected result: %+v", res)
	}
	if got := h.intent(t, launch.Intent.ID); got.ExternalRef != "bank:admin-7" {
		t.Fatalf("unexpected external ref %q", got.ExternalRef)
	}

	again, err := h.uc.ConfirmBankTransfer(ctx, launch.Intent.ID, "admin-7", "")
	if err != nil || !again.Duplicate {
		t.Fatalf("expected duplicate confirm, got %+v %v", again, err)
	}
	rejected, err := h.uc.RejectBankTransfer(ctx, launch.Intent.ID, "admin-7")
	if err != nil || !rejected.Duplicate || rejected.Status != entities.PaymentStatusConfirmed {
		t.Fatalf("expected duplicate reject, got %+v %v", rejected, err)
	}
}

func TestFulfillment_BankActionsRejectOtherGateways(t *testing.T) {
	h := newHarness(t, nil, testFulfillmentConfig())
	intent := h.createIntent(t, entities.GatewayRedirect)

	if _, err := h.uc.ConfirmBankTransfer(context.Background(), intent.ID, "admin-7", "ref"); !errors.Is(err, ErrGatewayMismatch) {
		t.Fatalf("expected ErrGatewayMismatch, got %v", err)
	}
}

func TestFulfillment_ExpireIntent(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil, testFulfillmentConfig())
	intent := h.createIntent(t, entities.GatewayRedirect)

	res, err := h.uc.ExpireIntent(ctx, intent.ID)
	if err != nil || res.Status != entities.PaymentStatusExpired || res.Duplicate {
		t.Fatalf("unexpected expire result: %+v %v", res, err)
	}

	late, err := h.uc.HandleNotification(ctx, h.redirectEvent(intent, "2", entities.OutcomeSuccess))
	if err != nil || !late.Duplicate || late.Status != entities.PaymentStatusExpired {
		t.Fatalf("late success must not resurrect an expired intent: %+v %v", late, err)
	}

	again, err := h.uc.ExpireIntent(ctx, intent.ID)
	if err != nil || !again.Duplicate {
		t.Fatalf("expected duplicate expire, got %+v %v", again, err)
	}
}

func TestFulfillment_RepairsMissingGrantOnReplay(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil, testFulfillmentConfig())
	intent := h.createIntent(t, entities.GatewayRedirect)

	// Confirmed in the ledger, but the grant write never happened.
	if _, err := h.intents.CompareAndTransition(ctx, intent.ID, entities.PaymentStatusPending, entities.PaymentStatusConfirmed, "320025071"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := h.uc.HandleNotification(ctx, h.redirectEvent(intent, "2", entities.OutcomeSuccess))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Duplicate || !res.GrantCreated {
		t.Fatalf("expected repaired grant, got %+v", res)
	}
	if h.dispatcher.count() != 1 {
		t.Fatalf("expected one dispatch, got %d", h.dispatcher.count())
	}
}

func TestFulfillment_CurrencyFallback(t *testing.T) {
	ctx := context.Background()
	cfg := testFulfillmentConfig()
	cfg.SettlementCurrencies[entities.GatewayRedirect] = "EUR"

	h := newHarness(t, nil, cfg)
	launch, err := h.uc.CreateIntent(ctx, CreateIntentCommand{BuyerID: "buyer-1", CourseID: "course-1", Gateway: entities.GatewayRedirect})
	if err != nil {
		t.Fatalf("lenient mode must settle 1:1, got %v", err)
	}
	if launch.Intent.SettlementAmount != 5000 || launch.Intent.SettlementCurrency != "EUR" {
		t.Fatalf("unexpected settlement: %+v", launch.Intent)
	}

	strict := testFulfillmentConfig()
	strict.SettlementCurrencies[entities.GatewayRedirect] = "EUR"
	strict.StrictCurrency = true
	hs := newHarness(t, nil, strict)
	if _, err := hs.uc.CreateIntent(ctx, CreateIntentCommand{BuyerID: "buyer-1", CourseID: "course-1", Gateway: entities.GatewayRedirect}); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
	}
}

func TestFulfillment_RedirectLaunchForm(t *testing.T) {
	h := newHarness(t, nil, testFulfillmentConfig())
	launch, err := h.uc.CreateIntent(context.Background(), CreateIntentCommand{BuyerID: "buyer-1", CourseID: "course-1", Gateway: entities.GatewayRedirect})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	form := launch.Redirect
	if form == nil || form.ActionURL != "https://sandbox.redirect.test/pay/checkout" {
		t.Fatalf("unexpected launch: %+v", form)
	}
	if form.Fields["order_id"] != launch.Intent.ID || form.Fields["amount"] != "15000.00" || form.Fields["currency"] != "LKR" {
		t.Fatalf("unexpected fields: %+v", form.Fields)
	}
	if form.Fields["hash"] != h.verifier.SignRedirect(launch.Intent.ID, 1500000, "LKR") {
		t.Fatalf("unexpected hash %q", form.Fields["hash"])
	}
}

func TestFulfillment_ZeroDecimalSettlementCurrency(t *testing.T) {
	ctx := context.Background()
	cfg := testFulfillmentConfig()
	cfg.SettlementCurrencies[entities.GatewayRedirect] = "JPY"
	h := newHarness(t, nil, cfg)

	launch, err := h.uc.CreateIntent(ctx, CreateIntentCommand{BuyerID: "buyer-1", CourseID: "course-1", Gateway: entities.GatewayRedirect})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	intent := launch.Intent
	if intent.SettlementAmount != 7500 || intent.SettlementCurrency != "JPY" {
		t.Fatalf("unexpected settlement: %d %s", intent.SettlementAmount, intent.SettlementCurrency)
	}
	if got := launch.Redirect.Fields["amount"]; got != "7500" {
		t.Fatalf("launch form must ask for the full amount, got %q", got)
	}

	// The gateway reports 75 JPY collected, signed over what it actually charged.
	form := url.Values{
		"order_id":         {intent.ID},
		"payment_id":       {"320025071"},
		"payhere_amount":   {"75"},
		"payhere_currency": {"JPY"},
		"status_code":      {"2"},
		"md5sig":           {h.verifier.RedirectDigest(intent.ID, 75, "JPY", "2")},
	}
	event, err := notification.ParseRedirectForm(form)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := h.uc.HandleNotification(ctx, event); !errors.Is(err, ErrAmountMismatch) {
		t.Fatalf("expected ErrAmountMismatch for an underpayment, got %v", err)
	}
	if grant, _ := h.grants.GetGrant(ctx, "buyer-1", "course-1"); grant.IntentID != "" {
		t.Fatalf("expected no grant, got %+v", grant)
	}
}

func TestFulfillment_ZeroDecimalSettlementConfirms(t *testing.T) {
	ctx := context.Background()
	cfg := testFulfillmentConfig()
	cfg.SettlementCurrencies[entities.GatewayRedirect] = "JPY"
	h := newHarness(t, nil, cfg)
	intent := h.createIntent(t, entities.GatewayRedirect)

	form := url.Values{
		"order_id":         {intent.ID},
		"payment_id":       {"320025071"},
		"payhere_amount":   {"7500"},
		"payhere_currency": {"JPY"},
		"status_code":      {"2"},
		"md5sig":           {h.verifier.RedirectDigest(intent.ID, 7500, "JPY", "2")},
	}
	event, err := notification.ParseRedirectForm(form)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := h.uc.HandleNotification(ctx, event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.PaymentStatusConfirmed || !res.GrantCreated {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestFulfillment_TwoIntentsSameCourseYieldOneGrant(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil, testFulfillmentConfig())

	first := h.createIntent(t, entities.GatewayRedirect)
	second := h.createIntent(t, entities.GatewayRedirect)
	if first.ID == second.ID {
		t.Fatalf("expected independent intents, got %s twice", first.ID)
	}

	r1, err := h.uc.HandleNotification(ctx, h.redirectEvent(first, "2", entities.OutcomeSuccess))
	if err != nil {
		t.Fatalf("first confirmation: %v", err)
	}
	r2, err := h.uc.HandleNotification(ctx, h.redirectEvent(second, "2", entities.OutcomeSuccess))
	if err != nil {
		t.Fatalf("second confirmation: %v", err)
	}

	if r1.Status != entities.PaymentStatusConfirmed || !r1.GrantCreated {
		t.Fatalf("unexpected first result: %+v", r1)
	}
	if r2.Status != entities.PaymentStatusConfirmed || r2.GrantCreated {
		t.Fatalf("unexpected second result: %+v", r2)
	}
	grants, _ := h.grants.ListByBuyer(ctx, "buyer-1")
	if len(grants) != 1 || grants[0].IntentID != first.ID {
		t.Fatalf("expected one grant from %s, got %+v", first.ID, grants)
	}
	if h.dispatcher.count() != 1 {
		t.Fatalf("expected one fulfillment dispatch, got %d", h.dispatcher.count())
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"learnhub_checkout/internal/domain/currency"
	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/domain/signature"
	"learnhub_checkout/internal/infrastructure/logging"
	"learnhub_checkout/internal/infrastructure/metrics"
	"learnhub_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IFulfillmentUseCase drives payment intents from creation to fulfillment.
//
// Intent lifecycle: pending -> confirmed | failed | expired. Every transition is a
// conditional write "only if still pending"; a caller that loses the race observes the
// terminal status and the call becomes a no-op.
type IFulfillmentUseCase interface {
	CreateIntent(ctx context.Context, cmd CreateIntentCommand) (IntentLaunch, error)
	HandleNotification(ctx context.Context, event entities.NotificationEvent) (NotificationResult, error)
	ConfirmBankTransfer(ctx context.Context, intentID, adminID, reference string) (NotificationResult, error)
	RejectBankTransfer(ctx context.Context, intentID, adminID string) (NotificationResult, error)
	ExpireIntent(ctx context.Context, intentID string) (NotificationResult, error)
	GetIntent(ctx context.Context, intentID string) (entities.PaymentIntent, error)
	ListIntentsByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.PaymentIntent, error)
	ListGrantsByBuyer(ctx context.Context, buyerID string) ([]entities.AccessGrant, error)
}

type CreateIntentCommand struct {
	BuyerID  string
	CourseID string
	Gateway  entities.Gateway
}

// RedirectLaunch is the auto-submitted form that hands the buyer to the redirect gateway.
type RedirectLaunch struct {
	ActionURL string
	Fields    map[string]string
}

type BankInstructions struct {
	BankName      string
	AccountName   string
	AccountNumber string
	Reference     string
	Amount        int64
	Currency      string
}

// IntentLaunch carries the created intent and exactly one gateway-specific handoff.
type IntentLaunch struct {
	Intent   entities.PaymentIntent
	Redirect *RedirectLaunch
	Checkout *interfaces.CheckoutSession
	Bank     *BankInstructions
}

type NotificationResult struct {
	IntentID string
	Status   entities.PaymentStatus
	// Duplicate is set when the intent was already terminal and nothing changed.
	Duplicate    bool
	GrantCreated bool
}

type RedirectLaunchConfig struct {
	MerchantID  string
	CheckoutURL string
	ReturnURL   string
	CancelURL   string
	NotifyURL   string
}

type BankAccountConfig struct {
	BankName      string
	AccountName   string
	AccountNumber string
}

// FulfillmentConfig is the immutable part of the orchestrator's configuration.
type FulfillmentConfig struct {
	SettlementCurrencies map[entities.Gateway]string
	// StrictCurrency rejects intents whose listed currency has no rate to the
	// settlement currency instead of settling 1:1.
	StrictCurrency bool
	Redirect       RedirectLaunchConfig
	Bank           BankAccountConfig
}

type FulfillmentDeps struct {
	Intents    interfaces.IPaymentIntentRepository
	Grants     interfaces.IAccessGrantRepository
	Courses    interfaces.ICourseRepository
	Checkout   interfaces.ICheckoutGateway
	Verifier   *signature.Verifier
	Normalizer *currency.Normalizer
	Granter    *AccessGranter
	Logger     *slog.Logger
}

type FulfillmentUseCase struct {
	intents    interfaces.IPaymentIntentRepository
	grants     interfaces.IAccessGrantRepository
	courses    interfaces.ICourseRepository
	checkout   interfaces.ICheckoutGateway
	verifier   *signature.Verifier
	normalizer *currency.Normalizer
	granter    *AccessGranter
	logger     *slog.Logger
	cfg        FulfillmentConfig
	now        func() time.Time
	newID      func() string
}

var _ IFulfillmentUseCase = (*FulfillmentUseCase)(nil)

func NewFulfillmentUseCase(deps FulfillmentDeps, cfg FulfillmentConfig) *FulfillmentUseCase {
	return &FulfillmentUseCase{
		intents:    deps.Intents,
		grants:     deps.Grants,
		courses:    deps.Courses,
		checkout:   deps.Checkout,
		verifier:   deps.Verifier,
		normalizer: deps.Normalizer,
		granter:    deps.Granter,
		logger:     deps.Logger,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

func (u *FulfillmentUseCase) CreateIntent(ctx context.Context, cmd CreateIntentCommand) (IntentLaunch, error) {
	buyerID := strings.TrimSpace(cmd.BuyerID)
	courseID := strings.TrimSpace(cmd.CourseID)
	switch {
	case buyerID == "":
		return IntentLaunch{}, ErrInvalidBuyerID
	case courseID == "":
		return IntentLaunch{}, ErrInvalidCourseID
	case !cmd.Gateway.Valid():
		return IntentLaunch{}, ErrInvalidGateway
	}
	ctx = logging.WithAttrs(ctx, slog.String("buyer_id", buyerID), slog.String("course_id", courseID), slog.String("gateway", string(cmd.Gateway)))
	u.logger.InfoContext(ctx, "[checkout][usecase] create-intent start")

	course, err := u.courses.GetByID(ctx, courseID)
	if err != nil {
		u.logger.ErrorContext(ctx, "[checkout][usecase] failed loading course", "err", err)
		return IntentLaunch{}, err
	}
	if course.ID == "" {
		return IntentLaunch{}, ErrCourseNotFound
	}
	if !course.Purchasable() {
		u.logger.InfoContext(ctx, "[checkout][usecase] course not purchasable", "status", course.Status)
		return IntentLaunch{}, ErrCourseNotPurchasable
	}

	owned, err := u.grants.GetGrant(ctx, buyerID, courseID)
	if err != nil {
		u.logger.ErrorContext(ctx, "[checkout][usecase] failed loading grant", "err", err)
		return IntentLaunch{}, err
	}
	if owned.IntentID != "" {
		u.logger.InfoContext(ctx, "[checkout][usecase] course already owned", "grant_intent_id", owned.IntentID)
		return IntentLaunch{}, ErrAlreadyOwned
	}

	settlementCurrency := u.cfg.SettlementCurrencies[cmd.Gateway]
	if settlementCurrency == "" {
		settlementCurrency = course.Currency
	}
	settlementAmount, exact := u.normalizer.Convert(course.Price, course.Currency, settlementCurrency)
	if !exact {
		if u.cfg.StrictCurrency {
			return IntentLaunch{}, ErrUnsupportedCurrency
		}
		u.logger.WarnContext(ctx, "[checkout][usecase] no exchange rate; settling 1:1",
			"from", course.Currency, "to", settlementCurrency, "amount", course.Price)
	}

	now := u.now()
	intent := entities.PaymentIntent{
		ID:                 u.newID(),
		BuyerID:            buyerID,
		CourseID:           courseID,
		Amount:             course.Price,
		Currency:           course.Currency,
		SettlementAmount:   settlementAmount,
		SettlementCurrency: strings.ToUpper(settlementCurrency),
		Gateway:            cmd.Gateway,
		Status:             entities.PaymentStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	ctx = logging.WithAttrs(ctx, slog.String("intent_id", intent.ID))

	launch := IntentLaunch{}
	switch cmd.Gateway {
	case entities.GatewayCheckout:
		// The session is opened before the intent is stored: the buyer only learns the
		// session URL once the insert succeeded.
		if u.checkout == nil {
			return IntentLaunch{}, ErrCheckoutUnavailable
		}
		session, err := u.checkout.CreateCheckoutSession(ctx, intent, course)
		if err != nil {
			u.logger.ErrorContext(ctx, "[checkout][usecase] checkout session failed", "err", err)
			return IntentLaunch{}, fmt.Errorf("%w: %v", ErrCheckoutUnavailable, err)
		}
		intent.CheckoutSessionID = session.ID
		launch.Checkout = &session
	case entities.GatewayRedirect:
		launch.Redirect = u.redirectLaunch(intent, course)
	case entities.GatewayBank:
		launch.Bank = &BankInstructions{
			BankName:      u.cfg.Bank.BankName,
			AccountName:   u.cfg.Bank.AccountName,
			AccountNumber: u.cfg.Bank.AccountNumber,
			Reference:     intent.ID,
			Amount:        intent.SettlementAmount,
			Currency:      intent.SettlementCurrency,
		}
	}

	if err := u.intents.Insert(ctx, intent); err != nil {
		u.logger.ErrorContext(ctx, "[checkout][usecase] insert intent failed", "err", err)
		return IntentLaunch{}, err
	}
	metrics.IntentCreated(string(cmd.Gateway))
	u.logger.InfoContext(ctx, "[checkout][usecase] create-intent success",
		"settlement_amount", intent.SettlementAmount, "settlement_currency", intent.SettlementCurrency)

	launch.Intent = intent
	return launch, nil
}

func (u *FulfillmentUseCase) redirectLaunch(intent entities.PaymentIntent, course entities.Course) *RedirectLaunch {
	return &RedirectLaunch{
		ActionURL: u.cfg.Redirect.CheckoutURL,
		Fields: map[string]string{
			"merchant_id": u.cfg.Redirect.MerchantID,
			"return_url":  u.cfg.Redirect.ReturnURL,
			"cancel_url":  u.cfg.Redirect.CancelURL,
			"notify_url":  u.cfg.Redirect.NotifyURL,
			"order_id":    intent.ID,
			"items":       course.Title,
			"currency":    intent.SettlementCurrency,
			"amount":      signature.FormatAmount(intent.SettlementAmount, intent.SettlementCurrency),
			"custom_1":    intent.BuyerID,
			"hash":        u.verifier.SignRedirect(intent.ID, intent.SettlementAmount, intent.SettlementCurrency),
		},
	}
}

// HandleNotification applies one gateway notification.
//
// The signature is checked before the ledger is read; a hard verification failure
// stops there. Notifications for terminal intents are acknowledged without mutation.
func (u *FulfillmentUseCase) HandleNotification(ctx context.Context, event entities.NotificationEvent) (NotificationResult, error) {
	start := time.Now()
	event.IntentID = strings.TrimSpace(event.IntentID)
	if event.IntentID == "" {
		return NotificationResult{}, ErrInvalidIntentID
	}
	if event.Gateway != entities.GatewayRedirect && event.Gateway != entities.GatewayCheckout {
		return NotificationResult{}, ErrInvalidGateway
	}
	defer metrics.NotificationDuration(string(event.Gateway), start)
	ctx = logging.WithAttrs(ctx, slog.String("intent_id", event.IntentID), slog.String("gateway", string(event.Gateway)))
	u.logger.InfoContext(ctx, "[checkout][usecase] notification start", "outcome", event.Outcome, "external_ref", event.ExternalRef)

	valid, err := u.verifier.Verify(event.Gateway, event)
	if err != nil {
		metrics.NotificationHandled(string(event.Gateway), "malformed_signature")
		u.logger.WarnContext(ctx, "[checkout][usecase] signature verification failed hard", "err", err)
		return NotificationResult{}, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	intent, err := u.intents.GetByID(ctx, event.IntentID)
	if err != nil {
		u.logger.ErrorContext(ctx, "[checkout][usecase] failed loading intent", "err", err)
		return NotificationResult{}, err
	}
	if intent.ID == "" {
		metrics.NotificationHandled(string(event.Gateway), "unknown_intent")
		u.logger.WarnContext(ctx, "[checkout][usecase] unknown intent")
		return NotificationResult{}, ErrUnknownIntent
	}
	if intent.Gateway != event.Gateway {
		metrics.NotificationHandled(string(event.Gateway), "gateway_mismatch")
		return NotificationResult{}, ErrGatewayMismatch
	}

	if intent.Status.Terminal() {
		if !valid {
			metrics.NotificationHandled(string(event.Gateway), "invalid_signature")
			u.logger.WarnContext(ctx, "[checkout][usecase] invalid signature on terminal intent", "status", intent.Status)
			return NotificationResult{}, ErrSignatureInvalid
		}
		return u.duplicate(ctx, intent)
	}

	if !valid {
		metrics.NotificationHandled(string(event.Gateway), "invalid_signature")
		u.logger.WarnContext(ctx, "[checkout][usecase] invalid signature; failing intent")
		if _, _, err := u.transition(ctx, intent.ID, entities.PaymentStatusFailed, ""); err != nil {
			u.logger.ErrorContext(ctx, "[checkout][usecase] failed marking intent failed", "err", err)
		}
		return NotificationResult{}, ErrSignatureInvalid
	}

	if event.Amount != intent.SettlementAmount || !strings.EqualFold(event.Currency, intent.SettlementCurrency) {
		metrics.NotificationHandled(string(event.Gateway), "amount_mismatch")
		u.logger.WarnContext(ctx, "[checkout][usecase] reported amount does not match intent; failing intent",
			"reported_amount", event.Amount, "reported_currency", event.Currency,
			"expected_amount", intent.SettlementAmount, "expected_currency", intent.SettlementCurrency)
		if _, _, err := u.transition(ctx, intent.ID, entities.PaymentStatusFailed, event.ExternalRef); err != nil {
			u.logger.ErrorContext(ctx, "[checkout][usecase] failed marking intent failed", "err", err)
		}
		return NotificationResult{}, ErrAmountMismatch
	}

	switch event.Outcome {
	case entities.OutcomeSuccess:
		return u.confirm(ctx, intent, event.ExternalRef)
	case entities.OutcomePending:
		metrics.NotificationHandled(string(event.Gateway), "pending")
		return NotificationResult{IntentID: intent.ID, Status: intent.Status}, nil
	case entities.OutcomeFailed, entities.OutcomeCanceled, entities.OutcomeChargedBack:
		return u.settle(ctx, intent, entities.PaymentStatusFailed, event.ExternalRef)
	default:
		return NotificationResult{}, ErrInvalidOutcome
	}
}

// ConfirmBankTransfer is the administrative counterpart of a success notification for
// bank-transfer intents. The admin action is the trust boundary; nothing is verified.
func (u *FulfillmentUseCase) ConfirmBankTransfer(ctx context.Context, intentID, adminID, reference string) (NotificationResult, error) {
	intent, ctx, err := u.loadBankIntent(ctx, intentID, adminID)
	if err != nil {
		return NotificationResult{}, err
	}
	if intent.Status.Terminal() {
		return u.duplicate(ctx, intent)
	}

	reference = strings.TrimSpace(reference)
	if reference == "" {
		reference = "bank:" + strings.TrimSpace(adminID)
	}
	u.logger.InfoContext(ctx, "[checkout][usecase] bank transfer confirmed by admin", "reference", reference)
	return u.confirm(ctx, intent, reference)
}

func (u *FulfillmentUseCase) RejectBankTransfer(ctx context.Context, intentID, adminID string) (NotificationResult, error) {
	intent, ctx, err := u.loadBankIntent(ctx, intentID, adminID)
	if err != nil {
		return NotificationResult{}, err
	}
	if intent.Status.Terminal() {
		return u.duplicate(ctx, intent)
	}
	u.logger.InfoContext(ctx, "[checkout][usecase] bank transfer rejected by admin")
	return u.settle(ctx, intent, entities.PaymentStatusFailed, "")
}

func (u *FulfillmentUseCase) loadBankIntent(ctx context.Context, intentID, adminID string) (entities.PaymentIntent, context.Context, error) {
	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return entities.PaymentIntent{}, ctx, ErrInvalidIntentID
	}
	ctx = logging.WithAttrs(ctx, slog.String("intent_id", intentID), slog.String("admin_id", adminID))

	intent, err := u.intents.GetByID(ctx, intentID)
	if err != nil {
		return entities.PaymentIntent{}, ctx, err
	}
	if intent.ID == "" {
		return entities.PaymentIntent{}, ctx, ErrUnknownIntent
	}
	if intent.Gateway != entities.GatewayBank {
		return entities.PaymentIntent{}, ctx, ErrGatewayMismatch
	}
	return intent, ctx, nil
}

// ExpireIntent is called by an external scheduler for intents left pending too long.
func (u *FulfillmentUseCase) ExpireIntent(ctx context.Context, intentID string) (NotificationResult, error) {
	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return NotificationResult{}, ErrInvalidIntentID
	}
	ctx = logging.WithAttrs(ctx, slog.String("intent_id", intentID))

	intent, err := u.intents.GetByID(ctx, intentID)
	if err != nil {
		return NotificationResult{}, err
	}
	if intent.ID == "" {
		return NotificationResult{}, ErrUnknownIntent
	}
	if intent.Status.Terminal() {
		return NotificationResult{IntentID: intent.ID, Status: intent.Status, Duplicate: true}, nil
	}
	return u.settle(ctx, intent, entities.PaymentStatusExpired, "")
}

func (u *FulfillmentUseCase) confirm(ctx context.Context, intent entities.PaymentIntent, externalRef string) (NotificationResult, error) {
	updated, applied, err := u.transition(ctx, intent.ID, entities.PaymentStatusConfirmed, externalRef)
	if err != nil {
		u.logger.ErrorContext(ctx, "[checkout][usecase] confirm transition failed", "err", err)
		return NotificationResult{}, err
	}
	if !applied {
		return u.duplicate(ctx, updated)
	}

	res, err := u.granter.Grant(ctx, intent.BuyerID, intent.CourseID, intent.ID)
	if err != nil {
		// The intent stays confirmed; the gateway's retry lands on the duplicate path,
		// which re-runs the idempotent grant.
		return NotificationResult{}, err
	}
	metrics.NotificationHandled(string(intent.Gateway), "confirmed")
	u.logger.InfoContext(ctx, "[checkout][usecase] intent confirmed", "grant_created", res.Created)
	return NotificationResult{IntentID: intent.ID, Status: entities.PaymentStatusConfirmed, GrantCreated: res.Created}, nil
}

func (u *FulfillmentUseCase) settle(ctx context.Context, intent entities.PaymentIntent, to entities.PaymentStatus, externalRef string) (NotificationResult, error) {
	updated, applied, err := u.transition(ctx, intent.ID, to, externalRef)
	if err != nil {
		return NotificationResult{}, err
	}
	if !applied {
		return u.duplicate(ctx, updated)
	}
	metrics.NotificationHandled(string(intent.Gateway), string(to))
	u.logger.InfoContext(ctx, "[checkout][usecase] intent settled", "status", to)
	return NotificationResult{IntentID: intent.ID, Status: to}, nil
}

// duplicate acknowledges a delivery for a terminal intent. For confirmed intents the
// grant is re-applied: it is an insert-if-absent, so it only acts when an earlier
// delivery confirmed the intent but failed before granting.
func (u *FulfillmentUseCase) duplicate(ctx context.Context, intent entities.PaymentIntent) (NotificationResult, error) {
	metrics.NotificationHandled(string(intent.Gateway), "duplicate")
	u.logger.InfoContext(ctx, "[checkout][usecase] duplicate delivery; intent already terminal", "status", intent.Status)

	result := NotificationResult{IntentID: intent.ID, Status: intent.Status, Duplicate: true}
	if intent.Status != entities.PaymentStatusConfirmed {
		return result, nil
	}

	res, err := u.granter.Grant(ctx, intent.BuyerID, intent.CourseID, intent.ID)
	if err != nil {
		return NotificationResult{}, err
	}
	if res.Created {
		u.logger.WarnContext(ctx, "[checkout][usecase] repaired missing grant for confirmed intent")
	}
	result.GrantCreated = res.Created
	return result, nil
}

// transition moves intent id out of pending. applied is false when another caller got
// there first; the returned intent then carries the terminal status it found. A status
// conflict is retried once before surfacing as ErrConcurrency.
func (u *FulfillmentUseCase) transition(ctx context.Context, id string, to entities.PaymentStatus, externalRef string) (entities.PaymentIntent, bool, error) {
	for attempt := 0; attempt < 2; attempt++ {
		updated, err := u.intents.CompareAndTransition(ctx, id, entities.PaymentStatusPending, to, externalRef)
		switch {
		case err == nil:
			return updated, true, nil
		case errors.Is(err, interfaces.ErrIntentAlreadyTerminal):
			current, gerr := u.intents.GetByID(ctx, id)
			if gerr != nil {
				return entities.PaymentIntent{}, false, gerr
			}
			return current, false, nil
		case errors.Is(err, interfaces.ErrIntentNotFound):
			return entities.PaymentIntent{}, false, ErrUnknownIntent
		case errors.Is(err, interfaces.ErrIntentStatusConflict):
			u.logger.WarnContext(ctx, "[checkout][usecase] status conflict; retrying", "attempt", attempt+1)
			continue
		default:
			return entities.PaymentIntent{}, false, err
		}
	}
	return entities.PaymentIntent{}, false, ErrConcurrency
}

func (u *FulfillmentUseCase) GetIntent(ctx context.Context, intentID string) (entities.PaymentIntent, error) {
	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return entities.PaymentIntent{}, ErrInvalidIntentID
	}
	intent, err := u.intents.GetByID(ctx, intentID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if intent.ID == "" {
		return entities.PaymentIntent{}, ErrUnknownIntent
	}
	return intent, nil
}

func (u *FulfillmentUseCase) ListIntentsByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.PaymentIntent, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return u.intents.ListByStatus(ctx, status)
}

func (u *FulfillmentUseCase) ListGrantsByBuyer(ctx context.Context, buyerID string) ([]entities.AccessGrant, error) {
	buyerID = strings.TrimSpace(buyerID)
	if buyerID == "" {
		return nil, ErrInvalidBuyerID
	}
	return u.grants.ListByBuyer(ctx, buyerID)
}

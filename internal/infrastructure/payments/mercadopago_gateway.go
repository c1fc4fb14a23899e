package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"

	"learnhub_checkout/internal/domain/currency"
	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing mercado pago access token")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidPaymentID                = errors.New("invalid mercado pago payment id")
)

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type MercadoPagoConfig struct {
	AccessToken     string
	NotificationURL string
	// Mock replaces every API call with a local, deterministic simulation.
	Mock bool
}

// MercadoPagoGateway opens hosted-checkout preferences and reads payments back when a
// webhook arrives.
type MercadoPagoGateway struct {
	preferences     preferenceCreator
	payments        paymentGetter
	notificationURL string
	logger          *slog.Logger

	mockMode bool
	mu       sync.Mutex
	sessions map[string]entities.PaymentIntent
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg MercadoPagoConfig, logger *slog.Logger) (*MercadoPagoGateway, error) {
	if cfg.Mock {
		logger.Info("[checkout][gateway] mock mode enabled")
		return &MercadoPagoGateway{
			notificationURL: cfg.NotificationURL,
			logger:          logger,
			mockMode:        true,
			sessions:        make(map[string]entities.PaymentIntent),
		}, nil
	}

	if cfg.AccessToken == "" {
		logger.Warn("[checkout][gateway] missing mercado pago access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		logger.Error("[checkout][gateway] failed creating sdk config", "err", err)
		return nil, err
	}
	logger.Info("[checkout][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences:     preference.NewClient(sdkCfg),
		payments:        payment.NewClient(sdkCfg),
		notificationURL: cfg.NotificationURL,
		logger:          logger,
	}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, intent entities.PaymentIntent, course entities.Course) (interfaces.CheckoutSession, error) {
	if g.mockMode {
		g.mu.Lock()
		g.sessions[intent.ID] = intent
		g.mu.Unlock()
		g.logger.InfoContext(ctx, "[checkout][gateway] mock preference created", "intent_id", intent.ID)
		return interfaces.CheckoutSession{
			ID:  "mock-pref-" + intent.ID,
			URL: "https://mock.mercadopago.local/checkout/" + intent.ID,
		}, nil
	}
	if g.preferences == nil {
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         course.ID,
				Title:      course.Title,
				Quantity:   1,
				UnitPrice:  toMajor(intent.SettlementAmount, intent.SettlementCurrency),
				CurrencyID: intent.SettlementCurrency,
			},
		},
		ExternalReference: intent.ID,
		NotificationURL:   g.notificationURL,
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		g.logger.ErrorContext(ctx, "[checkout][gateway] sdk preference create failed", "intent_id", intent.ID, "err", err)
		return interfaces.CheckoutSession{}, err
	}
	g.logger.InfoContext(ctx, "[checkout][gateway] preference created", "intent_id", intent.ID, "preference_id", resp.ID)
	return interfaces.CheckoutSession{ID: resp.ID, URL: resp.InitPoint}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (interfaces.GatewayPayment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if g.mockMode {
		return g.mockPayment(paymentID)
	}
	if g.payments == nil {
		return interfaces.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(paymentID)
	if err != nil || id <= 0 {
		return interfaces.GatewayPayment{}, fmt.Errorf("%w: %q", ErrInvalidPaymentID, paymentID)
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		g.logger.ErrorContext(ctx, "[checkout][gateway] sdk payment get failed", "payment_id", paymentID, "err", err)
		return interfaces.GatewayPayment{}, err
	}
	return interfaces.GatewayPayment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
		Amount:            toMinor(resp.TransactionAmount, resp.CurrencyID),
		Currency:          resp.CurrencyID,
	}, nil
}

// mockPayment reports every mock session as approved for exactly the amount it was
// opened with. Mock payment ids are intent ids.
func (g *MercadoPagoGateway) mockPayment(paymentID string) (interfaces.GatewayPayment, error) {
	g.mu.Lock()
	intent, ok := g.sessions[paymentID]
	g.mu.Unlock()
	if !ok {
		return interfaces.GatewayPayment{}, fmt.Errorf("%w: %q", ErrInvalidPaymentID, paymentID)
	}
	return interfaces.GatewayPayment{
		ID:                paymentID,
		Status:            "approved",
		ExternalReference: intent.ID,
		Amount:            intent.SettlementAmount,
		Currency:          intent.SettlementCurrency,
	}, nil
}

func toMajor(minor int64, code string) float64 {
	return float64(minor) / math.Pow10(currency.Exponent(code))
}

func toMinor(major float64, code string) int64 {
	return int64(math.Round(major * math.Pow10(currency.Exponent(code))))
}

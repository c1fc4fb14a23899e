package payments

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"learnhub_checkout/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePreferences struct {
	got preference.Request
	err error
}

func (f *fakePreferences) Create(_ context.Context, req preference.Request) (*preference.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &preference.Response{ID: "pref-1", InitPoint: "https://mp.test/init/pref-1"}, nil
}

type fakePayments struct {
	resp *payment.Response
	id   int
}

func (f *fakePayments) Get(_ context.Context, id int) (*payment.Response, error) {
	f.id = id
	return f.resp, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var checkoutIntent = entities.PaymentIntent{ID: "pi-1", SettlementAmount: 4999, SettlementCurrency: "USD"}

func TestMercadoPagoGateway_CreateCheckoutSession(t *testing.T) {
	prefs := &fakePreferences{}
	g := &MercadoPagoGateway{preferences: prefs, notificationURL: "https://learnhub.test/v1/notifications/checkout", logger: quietLogger()}

	session, err := g.CreateCheckoutSession(context.Background(), checkoutIntent, entities.Course{ID: "course-1", Title: "Go"})
	require.NoError(t, err)
	assert.Equal(t, "pref-1", session.ID)
	assert.Equal(t, "https://mp.test/init/pref-1", session.URL)

	require.Len(t, prefs.got.Items, 1)
	assert.InDelta(t, 49.99, prefs.got.Items[0].UnitPrice, 0.0001)
	assert.Equal(t, "USD", prefs.got.Items[0].CurrencyID)
	assert.Equal(t, "pi-1", prefs.got.ExternalReference)
	assert.Equal(t, "https://learnhub.test/v1/notifications/checkout", prefs.got.NotificationURL)
}

func TestMercadoPagoGateway_CreateCheckoutSessionError(t *testing.T) {
	g := &MercadoPagoGateway{preferences: &fakePreferences{err: errors.New("503")}, logger: quietLogger()}
	_, err := g.CreateCheckoutSession(context.Background(), checkoutIntent, entities.Course{})
	assert.Error(t, err)
}

func TestMercadoPagoGateway_GetPayment(t *testing.T) {
	pays := &fakePayments{resp: &payment.Response{ID: 123456, Status: "approved", ExternalReference: "pi-1", TransactionAmount: 49.99, CurrencyID: "USD"}}
	g := &MercadoPagoGateway{payments: pays, logger: quietLogger()}

	got, err := g.GetPayment(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, 123456, pays.id)
	assert.Equal(t, "123456", got.ID)
	assert.Equal(t, int64(4999), got.Amount)
	assert.Equal(t, "pi-1", got.ExternalReference)

	_, err = g.GetPayment(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrInvalidPaymentID)
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway(MercadoPagoConfig{Mock: true}, quietLogger())
	require.NoError(t, err)

	session, err := g.CreateCheckoutSession(context.Background(), checkoutIntent, entities.Course{})
	require.NoError(t, err)
	assert.Equal(t, "mock-pref-pi-1", session.ID)

	got, err := g.GetPayment(context.Background(), "pi-1")
	require.NoError(t, err)
	assert.Equal(t, "approved", got.Status)
	assert.Equal(t, int64(4999), got.Amount)

	_, err = g.GetPayment(context.Background(), "pi-unknown")
	assert.ErrorIs(t, err, ErrInvalidPaymentID)
}

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(MercadoPagoConfig{}, quietLogger())
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

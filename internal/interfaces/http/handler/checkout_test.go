package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"film-forge-api/internal/domain/entity"
	"film-forge-api/internal/mocks"
	apperrors "film-forge-api/pkg/errors"
)

func newCheckoutEngine(t *testing.T) (http.Handler, *mocks.MockCheckout) {
	checkout := mocks.NewMockCheckout(t)
	engine := newEngine()
	engine.POST("/create-checkout-session", NewCheckoutHandler(checkout).Create)
	return engine, checkout
}

func TestCheckout_Create(t *testing.T) {
	engine, checkout := newCheckoutEngine(t)
	checkout.On("CreateSession", mock.Anything, "price_lifetime_pro").Return(&entity.CheckoutSession{
		ID:      "cs_test_1",
		PriceID: "price_lifetime_pro",
		Mode:    entity.ModeForPrice("price_lifetime_pro"),
		URL:     "https://checkout.example/cs_test_1",
	}, nil).Once()

	w := postJSON(t, engine, "/create-checkout-session", map[string]any{"priceId": "price_lifetime_pro"})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "https://checkout.example/cs_test_1", body["url"])
	assert.Equal(t, "cs_test_1", body["sessionId"])
	assert.Equal(t, "payment", body["mode"])
	assert.NotEmpty(t, body["requestId"])
}

func TestCheckout_MissingPriceID(t *testing.T) {
	engine, checkout := newCheckoutEngine(t)

	w := postJSON(t, engine, "/create-checkout-session", map[string]any{"priceId": " "})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "priceId")
	checkout.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestCheckout_NotConfigured(t *testing.T) {
	engine, checkout := newCheckoutEngine(t)
	checkout.On("CreateSession", mock.Anything, "price_monthly").
		Return(nil, apperrors.ConfigMissing("STRIPE_SECRET_KEY")).Once()

	w := postJSON(t, engine, "/create-checkout-session", map[string]any{"priceId": "price_monthly"})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "failed to create checkout session", body["error"])
}

func TestCheckout_ProviderFailure(t *testing.T) {
	engine, checkout := newCheckoutEngine(t)
	checkout.On("CreateSession", mock.Anything, "price_monthly").
		Return(nil, apperrors.ProviderFailed("stripe", errors.New("no such price"))).Once()

	w := postJSON(t, engine, "/create-checkout-session", map[string]any{"priceId": "price_monthly"})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "no such price")
}

func TestModeForPrice(t *testing.T) {
	assert.Equal(t, entity.CheckoutModePayment, entity.ModeForPrice("price_lifetime_2026"))
	assert.Equal(t, entity.CheckoutModeSubscription, entity.ModeForPrice("price_monthly"))
}

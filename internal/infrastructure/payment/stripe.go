// Package payment creates checkout sessions and verifies payment webhooks with Stripe.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"

	"film-forge-api/internal/config"
	"film-forge-api/internal/domain/entity"
	apperrors "film-forge-api/pkg/errors"
	"film-forge-api/pkg/logger"
	"film-forge-api/pkg/metrics"
	"film-forge-api/pkg/tracer"
)

const (
	providerName = "stripe"

	// EventCheckoutCompleted is the only event this service records.
	EventCheckoutCompleted = "checkout.session.completed"
)

// StripeCheckout wraps the Stripe checkout session API.
type StripeCheckout struct {
	cfg       config.StripeConfig
	publicURL string
	backend   stripe.Backend
}

func NewStripeCheckout(cfg *config.Config) *StripeCheckout {
	return &StripeCheckout{
		cfg:       cfg.Providers.Stripe,
		publicURL: cfg.App.PublicURL,
		backend:   stripe.GetBackend(stripe.APIBackend),
	}
}

// WithBackend replaces the API backend, e.g. to point at a test server.
func (s *StripeCheckout) WithBackend(b stripe.Backend) *StripeCheckout {
	s.backend = b
	return s
}

// CreateSession creates a hosted checkout for priceID. The mode follows the price naming convention.
func (s *StripeCheckout) CreateSession(ctx context.Context, priceID string) (*entity.CheckoutSession, error) {
	if !s.cfg.Configured() {
		return nil, apperrors.ConfigMissing("STRIPE_SECRET_KEY")
	}

	mode := entity.ModeForPrice(priceID)
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(mode)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.publicURL + s.cfg.SuccessPath),
		CancelURL:  stripe.String(s.publicURL + s.cfg.CancelPath),
	}

	ctx, span := tracer.StartProvider(ctx, providerName, "checkout")
	start := time.Now()
	params.Context = ctx

	client := checkoutsession.Client{B: s.backend, Key: s.cfg.SecretKey}
	cs, err := client.New(params)

	metrics.ProviderCallDuration.WithLabelValues(providerName, "checkout").Observe(time.Since(start).Seconds())
	tracer.End(span, err)

	if err != nil {
		metrics.ProviderCallTotal.WithLabelValues(providerName, "checkout", "error").Inc()
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode >= http.StatusBadRequest &&
			stripeErr.HTTPStatusCode < http.StatusInternalServerError && stripeErr.HTTPStatusCode != http.StatusUnauthorized {
			return nil, apperrors.ProviderInvalidRequest(providerName, err)
		}
		return nil, apperrors.ProviderFailed(providerName, err)
	}
	metrics.ProviderCallTotal.WithLabelValues(providerName, "checkout", "success").Inc()

	return &entity.CheckoutSession{
		ID:      cs.ID,
		PriceID: priceID,
		Mode:    mode,
		URL:     cs.URL,
	}, nil
}

// ParseWebhook verifies the Stripe-Signature header and returns the purchase for a
// completed checkout. Other event types yield a nil record.
func (s *StripeCheckout) ParseWebhook(payload []byte, signature string) (*entity.PurchaseRecord, string, error) {
	if strings.TrimSpace(s.cfg.WebhookSecret) == "" {
		return nil, "", apperrors.New(apperrors.CodeSignatureInvalid, "invalid signature").
			WithDetail("STRIPE_WEBHOOK_SECRET is not set")
	}
	event, err := webhook.ConstructEvent(payload, signature, s.cfg.WebhookSecret)
	if err != nil {
		return nil, "", apperrors.Wrap(err, apperrors.CodeSignatureInvalid, "invalid signature")
	}

	eventType := string(event.Type)
	if eventType != EventCheckoutCompleted {
		return nil, eventType, nil
	}

	var cs stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
		// verified deliveries are acknowledged even when unreadable
		logger.Error(context.Background(), "decode checkout session", err, "event", event.ID)
		return nil, eventType, nil
	}
	return purchaseFromSession(&cs), eventType, nil
}

func purchaseFromSession(cs *stripe.CheckoutSession) *entity.PurchaseRecord {
	rec := &entity.PurchaseRecord{
		ID:            cs.ID,
		CustomerEmail: cs.CustomerEmail,
		Mode:          entity.CheckoutMode(cs.Mode),
		AmountTotal:   cs.AmountTotal,
		Currency:      string(cs.Currency),
		PaymentStatus: string(cs.PaymentStatus),
		CreatedAt:     time.Unix(cs.Created, 0).UTC(),
	}
	if cs.CustomerDetails != nil && cs.CustomerDetails.Email != "" {
		rec.CustomerEmail = cs.CustomerDetails.Email
	}
	if cs.Customer != nil {
		rec.CustomerID = cs.Customer.ID
	}
	return rec
}

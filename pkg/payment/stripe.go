package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
	"github.com/stripe/stripe-go/v74/webhook"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

type Options struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
	Currency      string
}

// StripeService owns its own API client so nothing touches the stripe.Key global.
type StripeService struct {
	api  *client.API
	opts Options
}

func NewStripeService(opts Options) *StripeService {
	return NewStripeServiceWithBackends(opts, nil)
}

// NewStripeServiceWithBackends lets tests point the client at a fake API.
func NewStripeServiceWithBackends(opts Options, backends *stripe.Backends) *StripeService {
	if opts.Currency == "" {
		opts.Currency = string(stripe.CurrencyGBP)
	}
	return &StripeService{
		api:  client.New(opts.SecretKey, backends),
		opts: opts,
	}
}

// CreateProduct registers a product with a default price of unitAmount minor units.
func (s *StripeService) CreateProduct(ctx context.Context, name, description, imageURL string, unitAmount int64) (*models.PaymentProduct, error) {
	params := &stripe.ProductParams{
		Name:        stripe.String(name),
		Description: stripe.String(description),
		DefaultPriceData: &stripe.ProductDefaultPriceDataParams{
			Currency:   stripe.String(s.opts.Currency),
			UnitAmount: stripe.Int64(unitAmount),
		},
	}
	if imageURL != "" {
		params.Images = stripe.StringSlice([]string{imageURL})
	}
	params.Context = ctx

	prod, err := s.api.Products.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create product: %w", err)
	}
	if prod.DefaultPrice == nil || prod.DefaultPrice.ID == "" {
		return nil, fmt.Errorf("stripe: product %s has no default price", prod.ID)
	}

	return &models.PaymentProduct{
		ProductID: prod.ID,
		PriceID:   prod.DefaultPrice.ID,
	}, nil
}

// ArchiveProduct deactivates a product. Stripe refuses to delete products with prices.
func (s *StripeService) ArchiveProduct(ctx context.Context, productID string) error {
	params := &stripe.ProductParams{Active: stripe.Bool(false)}
	params.Context = ctx

	if _, err := s.api.Products.Update(productID, params); err != nil {
		return fmt.Errorf("stripe: archive product %s: %w", productID, err)
	}
	return nil
}

func (s *StripeService) CreateCheckoutSession(ctx context.Context, userEmail, priceID string, quantity int64, metadata map[string]string) (*models.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(quantity),
			},
		},
		SuccessURL: stripe.String(s.opts.SuccessURL),
		CancelURL:  stripe.String(s.opts.CancelURL),
	}
	if userEmail != "" {
		params.CustomerEmail = stripe.String(userEmail)
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create checkout session: %w", err)
	}

	return &models.CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

// ParseWebhook verifies the Stripe-Signature header and flattens checkout
// session events. Other event types come back with only Type set.
func (s *StripeService) ParseWebhook(payload []byte, signature string) (*models.PaymentEvent, error) {
	// API version mismatch'i ignore et
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.opts.WebhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	result := &models.PaymentEvent{Type: string(event.Type)}

	switch result.Type {
	case models.PaymentEventCheckoutCompleted, models.PaymentEventCheckoutExpired:
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("stripe: decode checkout session: %w", err)
		}
		result.SessionID = sess.ID
		result.Status = string(sess.Status)
		if sess.PaymentIntent != nil {
			result.PaymentIntentID = sess.PaymentIntent.ID
		}
		result.CustomerEmail = sess.CustomerEmail
		if result.CustomerEmail == "" && sess.CustomerDetails != nil {
			result.CustomerEmail = sess.CustomerDetails.Email
		}
	}

	return result, nil
}

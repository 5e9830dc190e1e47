package models

import "time"

// CheckoutSession is what the payment gateway hands back for a new checkout.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// PaymentProduct holds the Stripe ids created for a paid event.
type PaymentProduct struct {
	ProductID string
	PriceID   string
}

// PaymentEvent is a verified webhook notification reduced to what orders need.
type PaymentEvent struct {
	Type            string
	SessionID       string
	Status          string
	PaymentIntentID string
	CustomerEmail   string
}

const (
	PaymentEventCheckoutCompleted = "checkout.session.completed"
	PaymentEventCheckoutExpired   = "checkout.session.expired"
)

// Stripe checkout session statuses stored in Order.StatusStripeID.
const (
	CheckoutStatusComplete = "complete"
	CheckoutStatusExpired  = "expired"
)

type CheckoutResult struct {
	Order       *Order `json:"order"`
	CheckoutURL string `json:"checkoutUrl,omitempty"`
}

// UploadSignature lets a browser push an image straight to the media host.
type UploadSignature struct {
	Provider  string            `json:"provider"`
	UploadURL string            `json:"uploadUrl"`
	Method    string            `json:"method"`
	Key       string            `json:"key"`
	PublicURL string            `json:"publicUrl"`
	Headers   map[string]string `json:"headers,omitempty"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

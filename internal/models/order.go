package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is a ticket purchase. The three Stripe ids stay nil until the
// matching step of the external checkout has happened.
type Order struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	EventID         uuid.UUID `json:"eventId" gorm:"type:uuid;not null;index"`
	Tickets         int       `json:"tickets" gorm:"not null"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	SessionStripeID *string   `json:"sessionStripeId" gorm:"uniqueIndex"`
	StatusStripeID  *string   `json:"statusStripeId"`
	PaymentStripeID *string   `json:"paymentStripeId"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TicketConfirmation carries what the confirmation e-mail shows about a paid order.
type TicketConfirmation struct {
	OrderID   uuid.UUID
	To        string
	FirstName string
	EventName string
	DateStart time.Time
	City      string
	Address   string
	Tickets   int
}

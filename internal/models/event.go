package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PriceFree marks an event that needs no payment product.
const PriceFree = "Free"

type Event struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	DateStart     time.Time `json:"dateStart" gorm:"not null;index"`
	DateEnd       time.Time `json:"dateEnd" gorm:"not null"`
	City          string    `json:"city" gorm:"not null;index"`
	Address       string    `json:"address" gorm:"not null"`
	Postcode      string    `json:"postcode" gorm:"not null"`
	Country       string    `json:"country" gorm:"not null"`
	CategoryID    uuid.UUID `json:"categoryId" gorm:"type:uuid;not null;index"`
	Category      *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Price         string    `json:"price" gorm:"not null"`
	Description   string    `json:"description" gorm:"not null"`
	UserID        uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	Capacity      int       `json:"capacity" gorm:"not null"`
	LogoURL       string    `json:"logoUrl" gorm:"not null"`
	Information   string    `json:"information"`
	ViewCount     int       `json:"viewCount" gorm:"not null;default:0"`
	PriceStripeID *string   `json:"priceStripeId"`
	ProdStripeID  *string   `json:"prodStripeId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// IsFree reports whether tickets for the event cost nothing.
func (e *Event) IsFree() bool {
	return e.Price == PriceFree
}

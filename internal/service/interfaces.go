package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/sefazor/eventix-backend/internal/repository"
)

type EventStore interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	GetUpcomingByID(ctx context.Context, id uuid.UUID, from time.Time) (*models.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter repository.EventFilter) ([]models.Event, error)
	Count(ctx context.Context, filter repository.EventFilter) (int64, error)
	Trending(ctx context.Context, from time.Time, limit int) ([]models.Event, error)
	Cities(ctx context.Context, from time.Time) ([]string, error)
}

type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetBySessionID(ctx context.Context, sessionID string) (*models.Order, error)
	CountByEventID(ctx context.Context, eventID uuid.UUID) (int64, error)
	SumTicketsByEventID(ctx context.Context, eventID uuid.UUID) (int64, error)
	GetUserOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	Update(ctx context.Context, order *models.Order) error
}

// PaymentGateway is implemented by payment.StripeService.
type PaymentGateway interface {
	CreateProduct(ctx context.Context, name, description, imageURL string, unitAmount int64) (*models.PaymentProduct, error)
	ArchiveProduct(ctx context.Context, productID string) error
	CreateCheckoutSession(ctx context.Context, userEmail, priceID string, quantity int64, metadata map[string]string) (*models.CheckoutSession, error)
	ParseWebhook(payload []byte, signature string) (*models.PaymentEvent, error)
}

type UploadSigner interface {
	SignUpload(ctx context.Context, contentType string) (*models.UploadSignature, error)
}

type TicketMailer interface {
	SendTicketConfirmation(ctx context.Context, msg models.TicketConfirmation) error
}

type Publisher interface {
	Publish(ctx context.Context, topic string, payload interface{}) error
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, email, role string) (string, error)
}

type QRGenerator interface {
	GenerateQRCode(code string, size int) ([]byte, error)
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/sefazor/eventix-backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockEventStore struct{ mock.Mock }

func (m *MockEventStore) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	args := m.Called(ctx, event)
	if fn, ok := args.Get(0).(func(context.Context, *models.Event) *models.Event); ok {
		return fn(ctx, event), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventStore) GetUpcomingByID(ctx context.Context, id uuid.UUID, from time.Time) (*models.Event, error) {
	args := m.Called(ctx, id, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockEventStore) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockEventStore) List(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventStore) Count(ctx context.Context, filter repository.EventFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventStore) Trending(ctx context.Context, from time.Time, limit int) ([]models.Event, error) {
	args := m.Called(ctx, from, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventStore) Cities(ctx context.Context, from time.Time) ([]string, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockCategoryStore struct{ mock.Mock }

func (m *MockCategoryStore) Create(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryStore) FindByName(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryStore) GetAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

type MockUserStore struct{ mock.Mock }

func (m *MockUserStore) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Create(ctx context.Context, order *models.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderStore) GetBySessionID(ctx context.Context, sessionID string) (*models.Order, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderStore) CountByEventID(ctx context.Context, eventID uuid.UUID) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderStore) SumTicketsByEventID(ctx context.Context, eventID uuid.UUID) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderStore) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderStore) Update(ctx context.Context, order *models.Order) error {
	return m.Called(ctx, order).Error(0)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateProduct(ctx context.Context, name, description, imageURL string, unitAmount int64) (*models.PaymentProduct, error) {
	args := m.Called(ctx, name, description, imageURL, unitAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentProduct), args.Error(1)
}

func (m *MockPaymentGateway) ArchiveProduct(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *MockPaymentGateway) CreateCheckoutSession(ctx context.Context, userEmail, priceID string, quantity int64, metadata map[string]string) (*models.CheckoutSession, error) {
	args := m.Called(ctx, userEmail, priceID, quantity, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutSession), args.Error(1)
}

func (m *MockPaymentGateway) ParseWebhook(payload []byte, signature string) (*models.PaymentEvent, error) {
	args := m.Called(payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentEvent), args.Error(1)
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) SendTicketConfirmation(ctx context.Context, msg models.TicketConfirmation) error {
	return m.Called(ctx, msg).Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, topic string, payload interface{}) error {
	return m.Called(ctx, topic, payload).Error(0)
}

type MockSigner struct{ mock.Mock }

func (m *MockSigner) SignUpload(ctx context.Context, contentType string) (*models.UploadSignature, error) {
	args := m.Called(ctx, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UploadSignature), args.Error(1)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) GenerateToken(userID uuid.UUID, email, role string) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}

type MockQR struct{ mock.Mock }

func (m *MockQR) GenerateQRCode(code string, size int) ([]byte, error) {
	args := m.Called(code, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

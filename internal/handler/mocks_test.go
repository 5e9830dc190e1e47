package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockEventUseCase struct{ mock.Mock }

func (m *MockEventUseCase) Create(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventUseCase) Delete(ctx context.Context, id string) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventUseCase) FetchAll(ctx context.Context, req models.FetchEventsRequest) (*models.EventList, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EventList), args.Error(1)
}

func (m *MockEventUseCase) SelectByID(ctx context.Context, id string) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventUseCase) FetchTrending(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventUseCase) FetchCities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockCategoryUseCase struct{ mock.Mock }

func (m *MockCategoryUseCase) Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryUseCase) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

type MockUserUseCase struct{ mock.Mock }

func (m *MockUserUseCase) Create(ctx context.Context, req models.CreateUserRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *MockUserUseCase) Delete(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserUseCase) SelectByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockOrderUseCase struct{ mock.Mock }

func (m *MockOrderUseCase) Checkout(ctx context.Context, userID uuid.UUID, req models.CheckoutRequest) (*models.CheckoutResult, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutResult), args.Error(1)
}

func (m *MockOrderUseCase) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	return m.Called(ctx, payload, signature).Error(0)
}

func (m *MockOrderUseCase) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderUseCase) TicketQRCode(ctx context.Context, orderID string, userID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockMediaUseCase struct{ mock.Mock }

func (m *MockMediaUseCase) SignUploadImage(ctx context.Context, contentType string) (*models.UploadSignature, error) {
	args := m.Called(ctx, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UploadSignature), args.Error(1)
}

package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
)

type EventUseCase interface {
	Create(ctx context.Context, req models.CreateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, id string) (*models.Event, error)
	FetchAll(ctx context.Context, req models.FetchEventsRequest) (*models.EventList, error)
	SelectByID(ctx context.Context, id string) (*models.Event, error)
	FetchTrending(ctx context.Context) ([]models.Event, error)
	FetchCities(ctx context.Context) ([]string, error)
}

type CategoryUseCase interface {
	Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
}

type UserUseCase interface {
	Create(ctx context.Context, req models.CreateUserRequest) (*models.AuthResponse, error)
	Delete(ctx context.Context, id string) (*models.User, error)
	SelectByEmail(ctx context.Context, email string) (*models.User, error)
}

type OrderUseCase interface {
	Checkout(ctx context.Context, userID uuid.UUID, req models.CheckoutRequest) (*models.CheckoutResult, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	TicketQRCode(ctx context.Context, orderID string, userID uuid.UUID) ([]byte, error)
}

type MediaUseCase interface {
	SignUploadImage(ctx context.Context, contentType string) (*models.UploadSignature, error)
}

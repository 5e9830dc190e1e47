package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/sefazor/eventix-backend/internal/service"
)

type OrderUseCase struct {
	orderService *service.OrderService
}

func NewOrderUseCase(orderService *service.OrderService) *OrderUseCase {
	return &OrderUseCase{
		orderService: orderService,
	}
}

func (u *OrderUseCase) Checkout(ctx context.Context, userID uuid.UUID, req models.CheckoutRequest) (*models.CheckoutResult, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, service.ErrEventNotFound
	}
	return u.orderService.Checkout(ctx, userID, eventID, req.Tickets)
}

func (u *OrderUseCase) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	return u.orderService.HandleWebhook(ctx, payload, signature)
}

func (u *OrderUseCase) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	return u.orderService.ListForUser(ctx, userID)
}

func (u *OrderUseCase) TicketQRCode(ctx context.Context, orderID string, userID uuid.UUID) ([]byte, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, service.ErrOrderNotFound
	}
	return u.orderService.TicketQRCode(ctx, id, userID)
}

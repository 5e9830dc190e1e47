package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/sefazor/eventix-backend/internal/repository"
	"github.com/sefazor/eventix-backend/pkg/broker"
	"github.com/sefazor/eventix-backend/pkg/payment"
	"go.uber.org/zap"
)

const TicketQRSize = 256

type OrderService struct {
	orderRepo OrderStore
	eventRepo EventStore
	userRepo  UserStore
	payments  PaymentGateway
	mailer    TicketMailer
	publisher Publisher
	qr        QRGenerator
	logger    *zap.Logger
	now       func() time.Time
}

func NewOrderService(
	orderRepo OrderStore,
	eventRepo EventStore,
	userRepo UserStore,
	payments PaymentGateway,
	mailer TicketMailer,
	publisher Publisher,
	qr QRGenerator,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		payments:  payments,
		mailer:    mailer,
		publisher: publisher,
		qr:        qr,
		logger:    logger.Named("order_service"),
		now:       time.Now,
	}
}

// Checkout reserves tickets. Free events are ordered straight away; paid
// events get a Stripe checkout session and the order waits for the webhook.
func (s *OrderService) Checkout(ctx context.Context, userID, eventID uuid.UUID, tickets int) (*models.CheckoutResult, error) {
	event, err := s.eventRepo.GetUpcomingByID(ctx, eventID, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, wrap(s.logger, "load event", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, wrap(s.logger, "load user", err)
	}

	sold, err := s.orderRepo.SumTicketsByEventID(ctx, eventID)
	if err != nil {
		return nil, wrap(s.logger, "count sold tickets", err)
	}
	if sold+int64(tickets) > int64(event.Capacity) {
		return nil, ErrNotEnoughTickets
	}

	order := &models.Order{
		UserID:  user.ID,
		EventID: event.ID,
		Tickets: tickets,
	}
	result := &models.CheckoutResult{Order: order}

	if !event.IsFree() {
		if event.PriceStripeID == nil {
			return nil, ErrEventNotPurchasable
		}

		session, err := s.payments.CreateCheckoutSession(ctx, user.Email, *event.PriceStripeID, int64(tickets), map[string]string{
			"user_id":  user.ID.String(),
			"event_id": event.ID.String(),
			"tickets":  strconv.Itoa(tickets),
		})
		if err != nil {
			return nil, wrap(s.logger, "create checkout session", err)
		}
		order.SessionStripeID = &session.ID
		result.CheckoutURL = session.URL
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, wrap(s.logger, "create order", err)
	}

	s.publish(ctx, broker.TopicOrderCreated, order)
	return result, nil
}

// HandleWebhook applies a Stripe notification to the order behind its session.
func (s *OrderService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.payments.ParseWebhook(payload, signature)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			s.logger.Warn("rejected webhook", zap.Error(err))
			return ErrInvalidSignature
		}
		return wrap(s.logger, "parse webhook", err)
	}

	switch event.Type {
	case models.PaymentEventCheckoutCompleted:
		order, err := s.orderForSession(ctx, event.SessionID)
		if err != nil || order == nil {
			return err
		}

		// Stripe aynı olayı tekrar gönderebilir
		if order.PaymentStripeID != nil {
			s.logger.Debug("order already paid", zap.String("order_id", order.ID.String()))
			return nil
		}

		order.StatusStripeID = stringPtr(event.Status)
		order.PaymentStripeID = stringPtr(event.PaymentIntentID)
		if err := s.orderRepo.Update(ctx, order); err != nil {
			return wrap(s.logger, "update order", err)
		}

		s.sendConfirmation(ctx, order, event.CustomerEmail)
		s.publish(ctx, broker.TopicOrderPaid, order)

	case models.PaymentEventCheckoutExpired:
		order, err := s.orderForSession(ctx, event.SessionID)
		if err != nil || order == nil {
			return err
		}

		order.StatusStripeID = stringPtr(event.Status)
		if err := s.orderRepo.Update(ctx, order); err != nil {
			return wrap(s.logger, "update order", err)
		}

	default:
		s.logger.Debug("ignoring webhook", zap.String("type", event.Type))
	}

	return nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	orders, err := s.orderRepo.GetUserOrders(ctx, userID)
	if err != nil {
		return nil, wrap(s.logger, "list orders", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// TicketQRCode renders the PNG ticket of an order owned by userID.
func (s *OrderService) TicketQRCode(ctx context.Context, orderID, userID uuid.UUID) ([]byte, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, wrap(s.logger, "load order", err)
	}

	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	if order.SessionStripeID != nil && order.PaymentStripeID == nil {
		return nil, ErrOrderNotPaid
	}

	png, err := s.qr.GenerateQRCode(order.ID.String(), TicketQRSize)
	if err != nil {
		return nil, wrap(s.logger, "generate qr code", err)
	}
	return png, nil
}

// orderForSession returns nil without error for sessions we never created.
func (s *OrderService) orderForSession(ctx context.Context, sessionID string) (*models.Order, error) {
	order, err := s.orderRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("webhook for unknown checkout session", zap.String("session_id", sessionID))
			return nil, nil
		}
		return nil, wrap(s.logger, "load order by session", err)
	}
	return order, nil
}

func (s *OrderService) sendConfirmation(ctx context.Context, order *models.Order, customerEmail string) {
	user, err := s.userRepo.GetByID(ctx, order.UserID)
	if err != nil {
		s.logger.Warn("confirmation skipped, user missing", zap.String("order_id", order.ID.String()), zap.Error(err))
		return
	}
	event, err := s.eventRepo.GetByID(ctx, order.EventID)
	if err != nil {
		s.logger.Warn("confirmation skipped, event missing", zap.String("order_id", order.ID.String()), zap.Error(err))
		return
	}

	to := user.Email
	if to == "" {
		to = customerEmail
	}

	err = s.mailer.SendTicketConfirmation(ctx, models.TicketConfirmation{
		OrderID:   order.ID,
		To:        to,
		FirstName: user.FirstName,
		EventName: event.Name,
		DateStart: event.DateStart,
		City:      event.City,
		Address:   event.Address,
		Tickets:   order.Tickets,
	})
	if err != nil {
		s.logger.Warn("failed to send confirmation", zap.String("order_id", order.ID.String()), zap.Error(err))
	}
}

func (s *OrderService) publish(ctx context.Context, topic string, order *models.Order) {
	payload := map[string]interface{}{
		"orderId": order.ID,
		"eventId": order.EventID,
		"userId":  order.UserID,
		"tickets": order.Tickets,
	}
	if err := s.publisher.Publish(ctx, topic, payload); err != nil {
		s.logger.Warn("failed to publish", zap.String("topic", topic), zap.Error(err))
	}
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

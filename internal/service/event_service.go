package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/sefazor/eventix-backend/internal/repository"
	"github.com/sefazor/eventix-backend/pkg/broker"
	"go.uber.org/zap"
)

const (
	TrendingLimit = 6

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type CreateEventInput struct {
	Name        string
	DateStart   time.Time
	DateEnd     time.Time
	City        string
	Address     string
	Postcode    string
	Country     string
	CategoryID  uuid.UUID
	Price       string
	Description string
	UserID      uuid.UUID
	Capacity    int
	LogoURL     string
	Information string
}

type FetchEventsInput struct {
	Name     string
	City     string
	Category string
	Page     int
	Limit    int
}

type EventService struct {
	eventRepo    EventStore
	categoryRepo CategoryStore
	userRepo     UserStore
	orderRepo    OrderStore
	payments     PaymentGateway
	publisher    Publisher
	logger       *zap.Logger
	now          func() time.Time
}

func NewEventService(
	eventRepo EventStore,
	categoryRepo CategoryStore,
	userRepo UserStore,
	orderRepo OrderStore,
	payments PaymentGateway,
	publisher Publisher,
	logger *zap.Logger,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		payments:     payments,
		publisher:    publisher,
		logger:       logger.Named("event_service"),
		now:          time.Now,
	}
}

func (s *EventService) Create(ctx context.Context, in CreateEventInput) (*models.Event, error) {
	if _, err := s.categoryRepo.GetByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, s.fail("load category", err)
	}

	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, s.fail("load organizer", err)
	}

	event := &models.Event{
		Name:        in.Name,
		DateStart:   in.DateStart,
		DateEnd:     in.DateEnd,
		City:        in.City,
		Address:     in.Address,
		Postcode:    in.Postcode,
		Country:     in.Country,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		Description: in.Description,
		UserID:      in.UserID,
		Capacity:    in.Capacity,
		LogoURL:     in.LogoURL,
		Information: in.Information,
	}

	// Ücretli etkinlik için Stripe'da ürün ve fiyat oluştur
	if !event.IsFree() {
		amount, err := ToMinorUnits(in.Price)
		if err != nil {
			return nil, err
		}

		product, err := s.payments.CreateProduct(ctx, in.Name, in.Description, in.LogoURL, amount)
		if err != nil {
			return nil, s.fail("create payment product", err)
		}
		event.ProdStripeID = &product.ProductID
		event.PriceStripeID = &product.PriceID
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		if event.ProdStripeID != nil {
			s.archiveProduct(ctx, *event.ProdStripeID)
		}
		return nil, s.fail("create event", err)
	}

	s.publish(ctx, broker.TopicEventCreated, created)
	return created, nil
}

func (s *EventService) Delete(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, s.fail("load event", err)
	}

	orders, err := s.orderRepo.CountByEventID(ctx, id)
	if err != nil {
		return nil, s.fail("count orders", err)
	}
	if orders > 0 {
		return nil, ErrEventHasOrders
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, s.fail("delete event", err)
	}

	if event.ProdStripeID != nil {
		s.archiveProduct(ctx, *event.ProdStripeID)
	}

	s.publish(ctx, broker.TopicEventDeleted, event)
	return event, nil
}

func (s *EventService) FetchAll(ctx context.Context, in FetchEventsInput) (*models.EventList, error) {
	page, limit := normalizePage(in.Page, in.Limit)

	filter := repository.EventFilter{
		Name:   in.Name,
		City:   in.City,
		From:   s.now(),
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	// Bilinmeyen kategori adı filtreyi devre dışı bırakır
	if in.Category != "" {
		category, err := s.categoryRepo.FindByName(ctx, in.Category)
		switch {
		case err == nil:
			filter.CategoryID = &category.ID
		case errors.Is(err, repository.ErrNotFound):
		default:
			return nil, s.fail("resolve category", err)
		}
	}

	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, s.fail("list events", err)
	}

	count, err := s.eventRepo.Count(ctx, filter)
	if err != nil {
		return nil, s.fail("count events", err)
	}

	if events == nil {
		events = []models.Event{}
	}
	return &models.EventList{Events: events, Count: count}, nil
}

// SelectByID returns an upcoming event and records the view.
func (s *EventService) SelectByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, err := s.eventRepo.GetUpcomingByID(ctx, id, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, s.fail("load event", err)
	}

	if err := s.eventRepo.IncrementViewCount(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, s.fail("increment view count", err)
	}
	event.ViewCount++

	return event, nil
}

func (s *EventService) FetchTrending(ctx context.Context) ([]models.Event, error) {
	events, err := s.eventRepo.Trending(ctx, s.now(), TrendingLimit)
	if err != nil {
		return nil, s.fail("list trending events", err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (s *EventService) FetchCities(ctx context.Context) ([]string, error) {
	cities, err := s.eventRepo.Cities(ctx, s.now())
	if err != nil {
		return nil, s.fail("list cities", err)
	}
	if cities == nil {
		cities = []string{}
	}
	return cities, nil
}

func (s *EventService) archiveProduct(ctx context.Context, productID string) {
	if err := s.payments.ArchiveProduct(ctx, productID); err != nil {
		s.logger.Warn("failed to archive payment product", zap.String("product_id", productID), zap.Error(err))
	}
}

func (s *EventService) publish(ctx context.Context, topic string, event *models.Event) {
	payload := map[string]interface{}{
		"eventId":   event.ID,
		"name":      event.Name,
		"userId":    event.UserID,
		"dateStart": event.DateStart,
	}
	if err := s.publisher.Publish(ctx, topic, payload); err != nil {
		s.logger.Warn("failed to publish", zap.String("topic", topic), zap.Error(err))
	}
}

func (s *EventService) fail(op string, err error) error {
	return wrap(s.logger, op, err)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

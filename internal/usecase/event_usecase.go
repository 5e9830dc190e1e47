package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/sefazor/eventix-backend/internal/service"
)

type EventUseCase struct {
	eventService *service.EventService
}

func NewEventUseCase(eventService *service.EventService) *EventUseCase {
	return &EventUseCase{
		eventService: eventService,
	}
}

func (u *EventUseCase) Create(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, service.ErrCategoryNotFound
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, service.ErrUserNotFound
	}

	return u.eventService.Create(ctx, service.CreateEventInput{
		Name:        req.Name,
		DateStart:   req.DateStart,
		DateEnd:     req.DateEnd,
		City:        req.City,
		Address:     req.Address,
		Postcode:    req.Postcode,
		Country:     req.Country,
		CategoryID:  categoryID,
		Price:       req.Price,
		Description: req.Description,
		UserID:      userID,
		Capacity:    req.Capacity,
		LogoURL:     req.LogoURL,
		Information: req.Information,
	})
}

func (u *EventUseCase) Delete(ctx context.Context, id string) (*models.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, service.ErrEventNotFound
	}
	return u.eventService.Delete(ctx, eventID)
}

func (u *EventUseCase) FetchAll(ctx context.Context, req models.FetchEventsRequest) (*models.EventList, error) {
	return u.eventService.FetchAll(ctx, service.FetchEventsInput{
		Name:     req.Name,
		City:     req.City,
		Category: req.Category,
		Page:     req.Page,
		Limit:    req.Limit,
	})
}

func (u *EventUseCase) SelectByID(ctx context.Context, id string) (*models.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, service.ErrEventNotFound
	}
	return u.eventService.SelectByID(ctx, eventID)
}

func (u *EventUseCase) FetchTrending(ctx context.Context) ([]models.Event, error) {
	return u.eventService.FetchTrending(ctx)
}

func (u *EventUseCase) FetchCities(ctx context.Context) ([]string, error) {
	return u.eventService.FetchCities(ctx)
}

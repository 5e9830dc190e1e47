package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/sefazor/eventix-backend/internal/service"
	"github.com/sefazor/eventix-backend/pkg/utils"
	"go.uber.org/zap"
)

// Zorunlu alanlar, kontrol sırasıyla
var eventRequiredFields = []string{
	"name",
	"dateStart",
	"dateEnd",
	"city",
	"address",
	"postcode",
	"country",
	"categoryId",
	"price",
	"description",
	"userId",
	"capacity",
	"logoUrl",
}

const msgUnknownOwnerOrCategory = "userId or categoryId not found"

type EventHandler struct {
	events    EventUseCase
	validator *utils.Validator
	logger    *zap.Logger
}

func NewEventHandler(events EventUseCase, validator *utils.Validator, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		events:    events,
		validator: validator,
		logger:    logger.Named("event_handler"),
	}
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	b, err := parseBody(c)
	if err != nil {
		return respondMessage(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	if field := b.firstMissing(eventRequiredFields...); field != "" {
		return missingParam(c, field)
	}

	req, err := eventRequestFromBody(b)
	if err != nil {
		return invalid(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return invalid(c, err)
	}

	event, err := h.events.Create(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) || errors.Is(err, service.ErrUserNotFound) {
			return invalidParam(c, msgUnknownOwnerOrCategory)
		}
		return respondError(c, h.logger, err)
	}

	return respond(c, fiber.StatusCreated, event)
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}

	event, err := h.events.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return respond(c, fiber.StatusOK, event)
}

func (h *EventHandler) GetEvents(c *fiber.Ctx) error {
	req := models.FetchEventsRequest{
		Name:     c.Query("name"),
		City:     c.Query("city"),
		Category: c.Query("category"),
		Page:     service.DefaultPage,
		Limit:    service.DefaultLimit,
	}

	var err error
	if raw := c.Query("page"); raw != "" {
		if req.Page, err = strconv.Atoi(raw); err != nil {
			return invalidParam(c, "page")
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if req.Limit, err = strconv.Atoi(raw); err != nil {
			return invalidParam(c, "limit")
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return invalid(c, err)
	}

	list, err := h.events.FetchAll(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return respond(c, fiber.StatusOK, list)
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}

	event, err := h.events.SelectByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return respond(c, fiber.StatusOK, event)
}

func (h *EventHandler) GetTrendingEvents(c *fiber.Ctx) error {
	events, err := h.events.FetchTrending(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respond(c, fiber.StatusOK, events)
}

func (h *EventHandler) GetCities(c *fiber.Ctx) error {
	cities, err := h.events.FetchCities(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respond(c, fiber.StatusOK, cities)
}

func eventRequestFromBody(b body) (models.CreateEventRequest, error) {
	var (
		req models.CreateEventRequest
		err error
	)

	if req.Name, err = b.str("name"); err != nil {
		return req, err
	}
	if req.DateStart, err = b.date("dateStart"); err != nil {
		return req, err
	}
	if req.DateEnd, err = b.date("dateEnd"); err != nil {
		return req, err
	}
	if req.City, err = b.str("city"); err != nil {
		return req, err
	}
	if req.Address, err = b.str("address"); err != nil {
		return req, err
	}
	if req.Postcode, err = b.str("postcode"); err != nil {
		return req, err
	}
	if req.Country, err = b.str("country"); err != nil {
		return req, err
	}
	if req.CategoryID, err = b.str("categoryId"); err != nil {
		return req, err
	}
	if req.Price, err = b.str("price"); err != nil {
		return req, err
	}
	if req.Description, err = b.str("description"); err != nil {
		return req, err
	}
	if req.UserID, err = b.str("userId"); err != nil {
		return req, err
	}
	if req.Capacity, err = b.integer("capacity"); err != nil {
		return req, err
	}
	if req.LogoURL, err = b.str("logoUrl"); err != nil {
		return req, err
	}
	if req.Information, err = b.str("information"); err != nil {
		return req, err
	}

	return req, nil
}

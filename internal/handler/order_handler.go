package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/sefazor/eventix-backend/pkg/utils"
	"go.uber.org/zap"
)

const msgNotAuthenticated = "User not authenticated"

type OrderHandler struct {
	orders    OrderUseCase
	validator *utils.Validator
	logger    *zap.Logger
}

func NewOrderHandler(orders OrderUseCase, validator *utils.Validator, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders:    orders,
		validator: validator,
		logger:    logger.Named("order_handler"),
	}
}

func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondMessage(c, fiber.StatusUnauthorized, msgNotAuthenticated)
	}

	b, err := parseBody(c)
	if err != nil {
		return respondMessage(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	if field := b.firstMissing("eventId", "tickets"); field != "" {
		return missingParam(c, field)
	}

	var req models.CheckoutRequest
	if req.EventID, err = b.str("eventId"); err != nil {
		return invalid(c, err)
	}
	if req.Tickets, err = b.integer("tickets"); err != nil {
		return invalid(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return invalid(c, err)
	}

	result, err := h.orders.Checkout(c.UserContext(), userID, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return respond(c, fiber.StatusCreated, result)
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondMessage(c, fiber.StatusUnauthorized, msgNotAuthenticated)
	}

	orders, err := h.orders.ListForUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return respond(c, fiber.StatusOK, orders)
}

func (h *OrderHandler) GetTicketQRCode(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondMessage(c, fiber.StatusUnauthorized, msgNotAuthenticated)
	}

	png, err := h.orders.TicketQRCode(c.UserContext(), c.Params("id"), userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}

func (h *OrderHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	signature := c.Get("Stripe-Signature")
	if signature == "" {
		return missingParam(c, "Stripe-Signature")
	}

	if err := h.orders.HandleWebhook(c.UserContext(), c.Body(), signature); err != nil {
		return respondError(c, h.logger, err)
	}

	return respond(c, fiber.StatusOK, fiber.Map{"received": true})
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/sefazor/eventix-backend/internal/service"
	"github.com/sefazor/eventix-backend/pkg/utils"
	"go.uber.org/zap"
)

const msgInvalidBody = "Invalid request body"

var notFoundErrors = []error{
	service.ErrEventNotFound,
	service.ErrUserNotFound,
	service.ErrCategoryNotFound,
	service.ErrOrderNotFound,
}

var badRequestErrors = []error{
	service.ErrEventHasOrders,
	service.ErrEmailTaken,
	service.ErrNotEnoughTickets,
	service.ErrEventNotPurchasable,
	service.ErrOrderNotPaid,
	service.ErrInvalidSignature,
	service.ErrInvalidPrice,
}

func respond(c *fiber.Ctx, status int, body interface{}) error {
	return c.Status(status).JSON(models.SuccessResponse(status, body))
}

func respondMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse(status, message))
}

func missingParam(c *fiber.Ctx, field string) error {
	return respondMessage(c, fiber.StatusBadRequest, "Missing param: "+field)
}

func invalidParam(c *fiber.Ctx, field string) error {
	return respondMessage(c, fiber.StatusBadRequest, "Invalid param: "+field)
}

// invalid reports a coercion or validation failure for the first bad field.
func invalid(c *fiber.Ctx, err error) error {
	var fe *fieldError
	if errors.As(err, &fe) {
		return invalidParam(c, fe.field)
	}
	if field := utils.FirstInvalidField(err); field != "" {
		return invalidParam(c, field)
	}
	return respondMessage(c, fiber.StatusBadRequest, msgInvalidBody)
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(models.ServerErrorResponse())
}

// respondError maps domain errors to 404/400 and everything else to the fixed 500.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return respondMessage(c, fiber.StatusNotFound, target.Error())
		}
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return respondMessage(c, fiber.StatusBadRequest, target.Error())
		}
	}

	logger.Error("request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return serverError(c)
}

// ErrorHandler renders anything a handler returned or panicked with.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return respondMessage(c, fe.Code, fe.Message)
		}

		logger.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return serverError(c)
	}
}

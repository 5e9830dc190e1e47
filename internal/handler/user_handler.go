package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/sefazor/eventix-backend/pkg/utils"
	"go.uber.org/zap"
)

const msgForbidden = "You are not allowed to delete this user"

type UserHandler struct {
	users     UserUseCase
	validator *utils.Validator
	logger    *zap.Logger
}

func NewUserHandler(users UserUseCase, validator *utils.Validator, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		users:     users,
		validator: validator,
		logger:    logger.Named("user_handler"),
	}
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	b, err := parseBody(c)
	if err != nil {
		return respondMessage(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	if field := b.firstMissing("firstName", "surname", "email"); field != "" {
		return missingParam(c, field)
	}

	var req models.CreateUserRequest
	if req.FirstName, err = b.str("firstName"); err != nil {
		return invalid(c, err)
	}
	if req.Surname, err = b.str("surname"); err != nil {
		return invalid(c, err)
	}
	if req.Email, err = b.str("email"); err != nil {
		return invalid(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return invalid(c, err)
	}

	res, err := h.users.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return respond(c, fiber.StatusCreated, res)
}

func (h *UserHandler) GetUserByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return missingParam(c, "email")
	}

	user, err := h.users.SelectByEmail(c.UserContext(), email)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return respond(c, fiber.StatusOK, user)
}

// DeleteUser lets users remove their own account; admins may remove any.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}

	callerID, ok := currentUserID(c)
	if !ok {
		return respondMessage(c, fiber.StatusUnauthorized, msgNotAuthenticated)
	}
	if currentRole(c) != models.RoleAdmin {
		if target, err := uuid.Parse(id); err != nil || target != callerID {
			return respondMessage(c, fiber.StatusForbidden, msgForbidden)
		}
	}

	user, err := h.users.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return respond(c, fiber.StatusOK, user)
}

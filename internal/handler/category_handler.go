package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/sefazor/eventix-backend/pkg/utils"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categories CategoryUseCase
	validator  *utils.Validator
	logger     *zap.Logger
}

func NewCategoryHandler(categories CategoryUseCase, validator *utils.Validator, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		validator:  validator,
		logger:     logger.Named("category_handler"),
	}
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	b, err := parseBody(c)
	if err != nil {
		return respondMessage(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	if field := b.firstMissing("name", "icon"); field != "" {
		return missingParam(c, field)
	}

	var req models.CreateCategoryRequest
	if req.Name, err = b.str("name"); err != nil {
		return invalid(c, err)
	}
	if req.Icon, err = b.str("icon"); err != nil {
		return invalid(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return invalid(c, err)
	}

	category, err := h.categories.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return respond(c, fiber.StatusCreated, category)
}

func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respond(c, fiber.StatusOK, categories)
}

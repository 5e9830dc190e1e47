package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/eventix-backend/pkg/utils"
	"go.uber.org/zap"
)

type signUploadQuery struct {
	ContentType string `json:"contentType" validate:"omitempty,supported_image"`
}

type MediaHandler struct {
	media     MediaUseCase
	validator *utils.Validator
	logger    *zap.Logger
}

func NewMediaHandler(media MediaUseCase, validator *utils.Validator, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		media:     media,
		validator: validator,
		logger:    logger.Named("media_handler"),
	}
}

func (h *MediaHandler) SignUploadImage(c *fiber.Ctx) error {
	q := signUploadQuery{ContentType: c.Query("contentType")}
	if err := h.validator.Struct(q); err != nil {
		return invalid(c, err)
	}

	signature, err := h.media.SignUploadImage(c.UserContext(), q.ContentType)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return respond(c, fiber.StatusOK, signature)
}

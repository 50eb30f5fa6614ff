package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mestraaurora/aurora-api/internal/dto"
	"github.com/mestraaurora/aurora-api/internal/service"
	"github.com/mestraaurora/aurora-api/internal/utils"
)

const (
	codeValidation     = "VALIDATION_ERROR"
	codeInvalidPayload = "INVALID_PAYLOAD"
	codeInternal       = "INTERNAL_ERROR"

	msgInvalidData     = "Dados inválidos."
	msgReadingInternal = "Erro interno ao gerar a leitura."
)

// ReadingHandler serves reading requests.
type ReadingHandler struct {
	service service.ReadingService
	logger  zerolog.Logger
}

// NewReadingHandler constructs a reading handler.
func NewReadingHandler(service service.ReadingService, logger zerolog.Logger) *ReadingHandler {
	return &ReadingHandler{
		service: service,
		logger:  logger.With().Str("component", "reading_handler").Logger(),
	}
}

// Register wires reading routes.
func (h *ReadingHandler) Register(router fiber.Router) {
	router.Post("", h.request)
}

func (h *ReadingHandler) request(c *fiber.Ctx) error {
	var payload dto.ReadingRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendErrorWithCode(c, fiber.StatusBadRequest, codeInvalidPayload, msgInvalidData, nil)
	}

	response, err := h.service.Request(c.UserContext(), payload)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return utils.SendErrorWithCode(c, fiber.StatusBadRequest, codeValidation, msgInvalidData, validationErr.Errors)
		}

		requestLogger(h.logger, c).Error().Err(err).Msg("failed to generate reading")
		return utils.SendErrorWithCode(c, fiber.StatusInternalServerError, codeInternal, msgReadingInternal, nil)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

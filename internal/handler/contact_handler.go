package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mestraaurora/aurora-api/internal/dto"
	"github.com/mestraaurora/aurora-api/internal/service"
	"github.com/mestraaurora/aurora-api/internal/utils"
)

// ContactHandler handles contact submissions.
type ContactHandler struct {
	service service.ContactService
	logger  zerolog.Logger
}

// NewContactHandler constructs a contact handler.
func NewContactHandler(service service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("component", "contact_handler").Logger(),
	}
}

// Register wires contact routes.
func (h *ContactHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
}

func (h *ContactHandler) submit(c *fiber.Ctx) error {
	var payload dto.ContactRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Todos os campos são obrigatórios.")
	}

	err := h.service.Submit(c.UserContext(), payload)
	switch {
	case err == nil:
		return utils.SendSuccess(c, "Mensagem enviada com sucesso!", nil)
	case errors.Is(err, service.ErrContactIncomplete):
		return utils.SendError(c, fiber.StatusBadRequest, "Todos os campos são obrigatórios.")
	case errors.Is(err, service.ErrContactEmail):
		return utils.SendError(c, fiber.StatusBadRequest, "E-mail inválido.")
	case errors.Is(err, service.ErrContactDelivery):
		return utils.SendError(c, fiber.StatusInternalServerError, "Erro ao enviar mensagem. Por favor, tente novamente.")
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to process contact submission")
		return utils.SendError(c, fiber.StatusInternalServerError, "Erro interno ao enviar mensagem.")
	}
}

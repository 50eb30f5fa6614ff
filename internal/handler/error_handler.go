package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mestraaurora/aurora-api/internal/utils"
)

// ErrorHandler shapes errors escaping handlers, including recovered panics, into the JSON envelope.
func ErrorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	logger = logger.With().Str("component", "error_handler").Logger()

	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return utils.SendError(c, fiberErr.Code, fiberErr.Message)
		}

		requestLogger(logger, c).Error().Err(err).Str("path", c.Path()).Msg("unhandled request error")
		return utils.SendErrorWithCode(c, fiber.StatusInternalServerError, codeInternal, "Erro interno.", nil)
	}
}

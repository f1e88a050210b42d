package middleware

import (
	"errors"

	apperrors "github.com/JwadKadry/stake-invest/internal/errors"
	"github.com/JwadKadry/stake-invest/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// ErrorHandler renders every error as the standard envelope. Only AppError
// and fiber.Error messages reach the client.
func ErrorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := apperrors.As(err); ok {
			if appErr.Kind == apperrors.KindInternal {
				logger.Error().Err(err).Str("request_id", RequestID(c)).Str("path", c.Path()).Msg("request failed")
				return utils.InternalError(c, "Internal server error")
			}
			return utils.Fail(c, appErr.Status(), appErr.Message)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return utils.Fail(c, fiberErr.Code, fiberErr.Message)
		}

		logger.Error().Err(err).Str("request_id", RequestID(c)).Str("path", c.Path()).Msg("unhandled error")
		return utils.InternalError(c, "Internal server error")
	}
}

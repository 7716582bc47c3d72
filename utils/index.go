package utils

import (
	"errors"

	"tourhub/constants"
	"tourhub/service"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// MessageResponse is a success envelope carrying a message and optional data.
func MessageResponse(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// HandleError writes the HTTP response for an error returned by a service.
func HandleError(c *fiber.Ctx, err error) error {
	var (
		ve *service.ValidationError
		nf *service.NotFoundError
		ce *service.ConflictError
		de *service.DependencyError
	)
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": constants.ERROR_VALIDATION,
			"error":   ve.Error(),
			"fields":  ve.Fields,
		})
	case errors.As(err, &nf):
		return ErrorResponse(c, fiber.StatusNotFound, capitalize(nf.Entity)+" not found", err)
	case errors.As(err, &ce):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": ce.Message,
			"error":   ce.Error(),
			"field":   ce.Field,
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		return ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, err)
	case errors.Is(err, service.ErrAccountDisabled):
		return ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, err)
	case errors.As(err, &de):
		return ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New(de.Op+" failed"))
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	return ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

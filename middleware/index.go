package middleware

import (
	"errors"
	"strings"
	"time"

	"tourhub/constants"
	"tourhub/helper"
	"tourhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const ClaimsKey = "claims"

// Protected requires a valid access token, read from the access_token cookie
// or an Authorization: Bearer header. The verified claims are stored in Locals.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		claims, err := helper.VerifyToken(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// AdminOnly must run after Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := CurrentClaims(c)
		if claims == nil || !claims.IsAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
		}
		return c.Next()
	}
}

func CurrentClaims(c *fiber.Ctx) *helper.Claims {
	claims, _ := c.Locals(ClaimsKey).(*helper.Claims)
	return claims
}

// RequestLogger logs every request with zerolog once the handler chain returns.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(chainErr, &fe) {
			status = fe.Code
		}

		var event *zerolog.Event
		switch {
		case status >= 500 || (chainErr != nil && fe == nil):
			event = log.Error().Err(chainErr)
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}
		event.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status_code", status).
			Str("client_ip", c.IP()).
			Str("latency", time.Since(start).String()).
			Str("user_agent", c.Get(fiber.HeaderUserAgent)).
			Msg("Request processed")

		return chainErr
	}
}

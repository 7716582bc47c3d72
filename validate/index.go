package validate

import (
	"errors"
	"fmt"
	"strconv"

	"tourhub/constants"
	"tourhub/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	InputKey   = "input"
	InputIDKey = "inputId"
)

// GetById parses the numeric route parameter key and stores it under InputIDKey.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		valueKey, err := strconv.ParseUint(c.Params(key), 10, 64)
		if err != nil || valueKey == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals(InputIDKey, uint(valueKey))
		return c.Next()
	}
}

// Body parses the request body into T, runs check on it and stores it under InputKey.
func Body[T any](check func(T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input T
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fmt.Errorf("invalid input: %w", err))
		}
		if check != nil {
			if err := check(input); err != nil {
				return utils.HandleError(c, err)
			}
		}

		c.Locals(InputKey, input)
		return c.Next()
	}
}

// Query parses the query string into T, runs check on it and stores it under InputKey.
func Query[T any](check func(T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input T
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fmt.Errorf("invalid query: %w", err))
		}
		if check != nil {
			if err := check(input); err != nil {
				return utils.HandleError(c, err)
			}
		}

		c.Locals(InputKey, input)
		return c.Next()
	}
}

// Input returns the value stored by Body or Query.
func Input[T any](c *fiber.Ctx) (T, error) {
	input, ok := c.Locals(InputKey).(T)
	if !ok {
		var zero T
		return zero, errors.New(constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	return input, nil
}

func InputID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals(InputIDKey).(uint)
	if !ok {
		return 0, errors.New(constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	return id, nil
}

package handler

import (
	"tourhub/constants"
	"tourhub/model"
	"tourhub/utils"
	"tourhub/validate"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Subscribe(c *fiber.Ctx) error {
	input, err := validate.Input[model.NewsletterInput](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	sub, resubscribed, err := h.svc.Newsletter.Subscribe(c.UserContext(), input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	if resubscribed {
		return utils.MessageResponse(c, fiber.StatusOK, "Successfully resubscribed to newsletter", sub)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "Successfully subscribed to newsletter", sub)
}

func (h *Handler) Unsubscribe(c *fiber.Ctx) error {
	input, err := validate.Input[model.NewsletterInput](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if err := h.svc.Newsletter.Unsubscribe(c.UserContext(), input); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Successfully unsubscribed from newsletter", nil)
}

func (h *Handler) GetSubscribers(c *fiber.Ctx) error {
	filter, err := validate.Input[model.NewsletterFilter](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	page, err := h.svc.Newsletter.List(c.UserContext(), filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

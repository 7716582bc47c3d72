package handler

import (
	"tourhub/constants"
	"tourhub/model"
	"tourhub/utils"
	"tourhub/validate"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) SubmitContact(c *fiber.Ctx) error {
	input, err := validate.Input[model.ContactInput](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	submission, err := h.svc.Contacts.Submit(c.UserContext(), input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "Thank you for contacting us. We will get back to you soon.", submission)
}

func (h *Handler) GetContacts(c *fiber.Ctx) error {
	filter, err := validate.Input[model.ContactFilter](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	page, err := h.svc.Contacts.List(c.UserContext(), filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *Handler) GetContactById(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	submission, err := h.svc.Contacts.Get(c.UserContext(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, submission)
}

func (h *Handler) MarkContactRead(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	submission, err := h.svc.Contacts.MarkRead(c.UserContext(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Marked as read", submission)
}

func (h *Handler) ReplyContact(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	input, err := validate.Input[model.ContactReplyInput](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	submission, err := h.svc.Contacts.Reply(c.UserContext(), id, input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Reply sent successfully", submission)
}

func (h *Handler) DeleteContact(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if err := h.svc.Contacts.Delete(c.UserContext(), id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Contact submission deleted", nil)
}

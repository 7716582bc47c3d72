package handler

import (
	"tourhub/constants"
	"tourhub/model"
	"tourhub/utils"
	"tourhub/validate"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetContent(c *fiber.Ctx) error {
	content, err := h.svc.Content.All(c.UserContext())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, content)
}

func (h *Handler) GetContentByKey(c *fiber.Ctx) error {
	entry, err := h.svc.Content.ByKey(c.UserContext(), c.Params("key"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, entry)
}

func (h *Handler) GetContentBySection(c *fiber.Ctx) error {
	content, err := h.svc.Content.BySection(c.UserContext(), c.Params("section"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, content)
}

func (h *Handler) GetAdminContent(c *fiber.Ctx) error {
	entries, err := h.svc.Content.ListAdmin(c.UserContext())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, entries)
}

func (h *Handler) UpsertContent(c *fiber.Ctx) error {
	input, err := validate.Input[model.ContentInput](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	entry, err := h.svc.Content.Upsert(c.UserContext(), c.Params("key"), input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Content saved", entry)
}

func (h *Handler) UpsertContentSection(c *fiber.Ctx) error {
	input, err := validate.Input[model.SectionInput](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	entries, err := h.svc.Content.UpsertSection(c.UserContext(), c.Params("section"), input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Section saved", entries)
}

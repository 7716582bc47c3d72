package handler

import (
	"tourhub/constants"
	"tourhub/model"
	"tourhub/utils"
	"tourhub/validate"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.svc.Categories.ListActive(c.UserContext())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func (h *Handler) GetCategoryBySlug(c *fiber.Ctx) error {
	category, err := h.svc.Categories.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func (h *Handler) GetAdminCategories(c *fiber.Ctx) error {
	categories, err := h.svc.Categories.ListAdmin(c.UserContext())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func (h *Handler) GetCategoryById(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	category, err := h.svc.Categories.Get(c.UserContext(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func (h *Handler) CreateCategory(c *fiber.Ctx) error {
	input, err := validate.Input[model.CategoryInput](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	category, err := h.svc.Categories.Create(c.UserContext(), input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "Category created successfully", category)
}

func (h *Handler) UpdateCategory(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	input, err := validate.Input[model.CategoryPatch](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	category, err := h.svc.Categories.Update(c.UserContext(), id, input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Category updated successfully", category)
}

func (h *Handler) DeleteCategory(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if err := h.svc.Categories.Delete(c.UserContext(), id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Category deleted successfully", nil)
}

package handler

import (
	"tourhub/constants"
	"tourhub/model"
	"tourhub/utils"
	"tourhub/validate"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetBlogPosts(c *fiber.Ctx) error {
	filter, err := validate.Input[model.BlogFilter](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	page, err := h.svc.Blog.ListPublished(c.UserContext(), filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *Handler) GetBlogPostBySlug(c *fiber.Ctx) error {
	post, err := h.svc.Blog.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, post)
}

func (h *Handler) IncrementBlogViews(c *fiber.Ctx) error {
	if err := h.svc.Blog.IncrementViews(c.UserContext(), c.Params("slug")); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "View recorded", nil)
}

func (h *Handler) GetRelatedBlogPosts(c *fiber.Ctx) error {
	posts, err := h.svc.Blog.Related(c.UserContext(), c.Params("slug"), c.QueryInt("limit", constants.DEFAULT_RELATED_LIMIT))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, posts)
}

func (h *Handler) GetAdminBlogPosts(c *fiber.Ctx) error {
	filter, err := validate.Input[model.BlogFilter](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	page, err := h.svc.Blog.ListAdmin(c.UserContext(), filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *Handler) GetBlogPostById(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	post, err := h.svc.Blog.Get(c.UserContext(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, post)
}

func (h *Handler) CreateBlogPost(c *fiber.Ctx) error {
	input, err := validate.Input[model.BlogPostInput](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	post, err := h.svc.Blog.Create(c.UserContext(), input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "Blog post created successfully", post)
}

func (h *Handler) UpdateBlogPost(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	input, err := validate.Input[model.BlogPostPatch](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	post, err := h.svc.Blog.Update(c.UserContext(), id, input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Blog post updated successfully", post)
}

func (h *Handler) DeleteBlogPost(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if err := h.svc.Blog.Delete(c.UserContext(), id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Blog post deleted successfully", nil)
}

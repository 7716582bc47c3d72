package handler

import (
	"tourhub/constants"
	"tourhub/model"
	"tourhub/utils"
	"tourhub/validate"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetTours(c *fiber.Ctx) error {
	filter, err := validate.Input[model.TourFilter](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	filter.IncludeInactive = false

	page, err := h.svc.Tours.List(c.UserContext(), filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *Handler) GetFeaturedTours(c *fiber.Ctx) error {
	tours, err := h.svc.Tours.Featured(c.UserContext(), c.QueryInt("limit", constants.DEFAULT_FEATURED_LIMIT))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tours)
}

func (h *Handler) GetOnSaleTours(c *fiber.Ctx) error {
	p, err := validate.Input[model.Pagination](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	page, err := h.svc.Tours.OnSale(c.UserContext(), p)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *Handler) GetTourBySlug(c *fiber.Ctx) error {
	tour, err := h.svc.Tours.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tour)
}

// GetAdminTours lists every tour, inactive ones included.
func (h *Handler) GetAdminTours(c *fiber.Ctx) error {
	filter, err := validate.Input[model.TourFilter](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	filter.IncludeInactive = true

	page, err := h.svc.Tours.List(c.UserContext(), filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *Handler) GetTourById(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	tour, err := h.svc.Tours.Get(c.UserContext(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tour)
}

func (h *Handler) CreateTour(c *fiber.Ctx) error {
	input, err := validate.Input[model.TourInput](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	tour, err := h.svc.Tours.Create(c.UserContext(), input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "Tour created successfully", tour)
}

func (h *Handler) UpdateTour(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	input, err := validate.Input[model.TourPatch](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	tour, err := h.svc.Tours.Update(c.UserContext(), id, input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Tour updated successfully", tour)
}

func (h *Handler) DeleteTour(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if err := h.svc.Tours.Delete(c.UserContext(), id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Tour deleted successfully", nil)
}

func (h *Handler) ToggleTourSale(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	tour, err := h.svc.Tours.ToggleSale(c.UserContext(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Sale status updated", tour)
}

package handler

import (
	"tourhub/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.svc.Dashboard.Stats(c.UserContext())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

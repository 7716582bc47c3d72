package handler

import (
	"errors"
	"net/url"
	"strings"

	"tourhub/constants"
	"tourhub/utils"
	"tourhub/validate"

	"github.com/gofiber/fiber/v2"
)

var errUploadsDisabled = errors.New("image storage is not configured")

func (h *Handler) UploadImage(c *fiber.Ctx) error {
	if h.images == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.ERROR_INTERNAL_ERROR, errUploadsDisabled)
	}
	header, err := validate.Upload(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.FILE_REQUIRED, err)
	}
	file, err := header.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.FILE_REQUIRED, err)
	}
	defer file.Close()

	folder := strings.Trim(c.FormValue("folder", "general"), "/ ")
	res, err := h.images.Upload(c.UserContext(), file, folder)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to upload image", err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "Image uploaded successfully", res)
}

// DeleteImage removes an image by its public id. The id may contain slashes and
// arrives URL-encoded in the last path segment.
func (h *Handler) DeleteImage(c *fiber.Ctx) error {
	if h.images == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.ERROR_INTERNAL_ERROR, errUploadsDisabled)
	}
	publicID, err := url.PathUnescape(c.Params("*"))
	if err != nil || publicID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("public id is required"))
	}
	if err := h.images.Destroy(c.UserContext(), publicID); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete image", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Image deleted successfully", nil)
}

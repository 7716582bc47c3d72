package handler

import (
	"tourhub/constants"
	"tourhub/helper"
	"tourhub/model"
	"tourhub/utils"
	"tourhub/validate"

	"github.com/gofiber/fiber/v2"
)

const qrSize = 256

// CreateBooking accepts a customer booking. Status, payment and price are
// always assigned by the server.
func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	input, err := validate.Input[model.CreateBookingInput](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	booking, err := h.svc.Bookings.Create(c.UserContext(), input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "Booking created successfully", booking)
}

func (h *Handler) GetBookingByReference(c *fiber.Ctx) error {
	booking, err := h.svc.Bookings.GetByReference(c.UserContext(), c.Params("reference"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// GetBookingQRCode renders the booking reference as a PNG QR code.
func (h *Handler) GetBookingQRCode(c *fiber.Ctx) error {
	booking, err := h.svc.Bookings.GetByReference(c.UserContext(), c.Params("reference"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	png, err := helper.GenerateQRCode(booking.BookingReference, qrSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Set(fiber.HeaderCacheControl, "private, max-age=3600")
	c.Type("png")
	return c.Send(png)
}

func (h *Handler) GetBookings(c *fiber.Ctx) error {
	filter, err := validate.Input[model.BookingFilter](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	page, err := h.svc.Bookings.List(c.UserContext(), filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *Handler) GetBookingById(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	booking, err := h.svc.Bookings.Get(c.UserContext(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func (h *Handler) UpdateBooking(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	input, err := validate.Input[model.BookingPatch](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	booking, err := h.svc.Bookings.Update(c.UserContext(), id, input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Booking updated successfully", booking)
}

func (h *Handler) DeleteBooking(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if err := h.svc.Bookings.Delete(c.UserContext(), id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Booking deleted successfully", nil)
}

func (h *Handler) ResendBookingConfirmation(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if err := h.svc.Bookings.ResendConfirmation(c.UserContext(), id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Confirmation email sent", nil)
}

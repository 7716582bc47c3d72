package handler

import (
	"time"

	"tourhub/config"
	"tourhub/constants"
	"tourhub/middleware"
	"tourhub/model"
	"tourhub/utils"
	"tourhub/validate"

	"github.com/gofiber/fiber/v2"
)

// Login issues an access token, returned in the body and as an HTTP-only cookie.
func (h *Handler) Login(c *fiber.Ctx) error {
	input, err := validate.Input[model.LoginInput](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}
	data, err := h.svc.Accounts.Login(c.UserContext(), input)
	if err != nil {
		return utils.HandleError(c, err)
	}

	setTokenCookie(c, data)
	return utils.MessageResponse(c, fiber.StatusOK, "Login successful", data)
}

// Register signs up a customer account and logs it in.
func (h *Handler) Register(c *fiber.Ctx) error {
	input, err := validate.Input[model.RegisterInput](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	data, err := h.svc.Accounts.Register(c.UserContext(), input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	setTokenCookie(c, data)
	return utils.MessageResponse(c, fiber.StatusCreated, "Registration successful", data)
}

func setTokenCookie(c *fiber.Ctx, data *model.TokenData) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    data.AccessToken,
		Expires:  time.Unix(data.ExpiresAt, 0),
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *Handler) Me(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, nil)
	}
	account, err := h.svc.Accounts.Me(c.UserContext(), claims.UserID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, nil)
	}
	input, err := validate.Input[model.ProfilePatch](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	account, err := h.svc.Accounts.UpdateProfile(c.UserContext(), claims.UserID, input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Profile updated successfully", account)
}

func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, nil)
	}
	input, err := validate.Input[model.ChangePasswordInput](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if err := h.svc.Accounts.ChangePassword(c.UserContext(), claims.UserID, input); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Password changed successfully", nil)
}

func (h *Handler) GetUsers(c *fiber.Ctx) error {
	accounts, err := h.svc.Accounts.ListAdmins(c.UserContext())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, accounts)
}

func (h *Handler) CreateUser(c *fiber.Ctx) error {
	input, err := validate.Input[model.AccountInput](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	account, err := h.svc.Accounts.Create(c.UserContext(), input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "User created successfully", account)
}

func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	input, err := validate.Input[model.AccountPatch](c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	account, err := h.svc.Accounts.Update(c.UserContext(), id, input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "User updated successfully", account)
}

func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	id, err := validate.InputID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, nil)
	}
	if err := h.svc.Accounts.Delete(c.UserContext(), id, claims.UserID); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "User deleted successfully", nil)
}

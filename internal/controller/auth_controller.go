package controller

import (
	"errors"

	"printing-support-be/internal/dto"
	"printing-support-be/internal/pkg/serverutils"
	"printing-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Please enter a valid email/phone and password.")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Please enter a valid email/phone and password.")
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidLoginInput):
			return serverutils.Fail(ctx, fiber.StatusBadRequest, "Please enter a valid email/phone and password.")
		case errors.Is(err, service.ErrInvalidCredentials):
			// Same message whether the identifier or the password was
			// wrong: don't reveal which part failed.
			return serverutils.Fail(ctx, fiber.StatusUnauthorized, "The email/phone or password you entered is incorrect. Please try again.")
		default:
			return serverutils.Fail(ctx, fiber.StatusInternalServerError, "We couldn't sign you in right now. Please try again in a moment.")
		}
	}

	return serverutils.Ok(ctx, fiber.Map{"user": res.User})
}

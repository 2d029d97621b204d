package controller

import (
	"errors"
	"strings"

	"printing-support-be/internal/dto"
	"printing-support-be/internal/pkg/serverutils"
	"printing-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRealtimeController interface {
	RegisterRoutes(r fiber.Router)
	CreateToken(ctx *fiber.Ctx) error
	CreateCall(ctx *fiber.Ctx) error
}

type realtimeController struct {
	service service.IRealtimeService
}

func NewRealtimeController(service service.IRealtimeService) IRealtimeController {
	return &realtimeController{service: service}
}

func (c *realtimeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/realtime")
	h.Post("/token", c.CreateToken)
	h.Post("/call", c.CreateCall)
}

func (c *realtimeController) CreateToken(ctx *fiber.Ctx) error {
	res, err := c.service.CreateToken(ctx.Context())
	if err != nil {
		if errors.Is(err, service.ErrMissingAPIKey) {
			return serverutils.Fail(ctx, fiber.StatusInternalServerError, "Missing OPENAI_API_KEY")
		}
		return serverutils.Fail(ctx, fiber.StatusInternalServerError, "Failed to create realtime session")
	}

	return serverutils.Ok(ctx, fiber.Map{"session": res.Session})
}

func (c *realtimeController) CreateCall(ctx *fiber.Ctx) error {
	var req dto.RealtimeCallRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Missing 'sdp' (string) in request body")
	}
	if strings.TrimSpace(req.Sdp) == "" {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Missing 'sdp' (string) in request body")
	}

	res, err := c.service.CreateCall(ctx.Context(), req.Sdp)
	if err != nil {
		if errors.Is(err, service.ErrMissingAPIKey) {
			return serverutils.Fail(ctx, fiber.StatusInternalServerError, "Missing OPENAI_API_KEY")
		}
		// Upstream status/body stay in the server log; the client gets a
		// generic failure and may not retry through us.
		return serverutils.Fail(ctx, fiber.StatusInternalServerError, "Realtime call failed")
	}

	return serverutils.Ok(ctx, fiber.Map{
		"answerSdp":    res.AnswerSdp,
		"callLocation": res.CallLocation,
	})
}

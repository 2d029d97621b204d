package controller

import (
	"errors"

	"printing-support-be/internal/dto"
	"printing-support-be/internal/pkg/serverutils"
	"printing-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	ListSessions(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	ListMessages(ctx *fiber.Ctx) error
	AppendMessage(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Get("/sessions", c.ListSessions)
	h.Post("/sessions", c.CreateSession)
	h.Delete("/sessions/:id", c.DeleteSession)
	h.Get("/sessions/:id/messages", c.ListMessages)
	h.Post("/messages", c.AppendMessage)
}

func (c *chatController) ListSessions(ctx *fiber.Ctx) error {
	userId, ok := serverutils.ResolveIdentity(ctx)
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusUnauthorized, "Missing user id.")
	}

	sessions, err := c.service.ListSessions(ctx.Context(), userId)
	if err != nil {
		return serverutils.Fail(ctx, fiber.StatusInternalServerError, "Something went wrong. Please try again.")
	}

	return serverutils.Ok(ctx, fiber.Map{"sessions": sessions})
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	userId, ok := serverutils.ResolveIdentity(ctx)
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusUnauthorized, "Missing user id.")
	}

	// A missing or malformed body falls back to the default title.
	var req dto.CreateSessionRequest
	_ = ctx.BodyParser(&req)

	session, err := c.service.CreateSession(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.Fail(ctx, fiber.StatusInternalServerError, "Something went wrong. Please try again.")
	}

	return serverutils.Ok(ctx, fiber.Map{"session": session})
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	userId, ok := serverutils.ResolveIdentity(ctx)
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusUnauthorized, "Missing user id.")
	}

	sessionId, ok := parseSessionId(ctx.Params("id"))
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid session id.")
	}

	deletedId, err := c.service.DeleteSession(ctx.Context(), userId, sessionId)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return serverutils.Fail(ctx, fiber.StatusNotFound, "Session not found.")
		}
		return serverutils.Fail(ctx, fiber.StatusInternalServerError, "Failed to delete session.")
	}

	return serverutils.Ok(ctx, fiber.Map{"deletedId": deletedId})
}

func (c *chatController) ListMessages(ctx *fiber.Ctx) error {
	userId, ok := serverutils.ResolveIdentity(ctx)
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusUnauthorized, "Missing user id.")
	}

	sessionId, ok := parseSessionId(ctx.Params("id"))
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid session id.")
	}

	messages, err := c.service.ListMessages(ctx.Context(), userId, sessionId)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return serverutils.Fail(ctx, fiber.StatusNotFound, "Session not found.")
		}
		return serverutils.Fail(ctx, fiber.StatusInternalServerError, "Something went wrong. Please try again.")
	}

	return serverutils.Ok(ctx, fiber.Map{"messages": messages})
}

func (c *chatController) AppendMessage(ctx *fiber.Ctx) error {
	userId, ok := serverutils.ResolveIdentity(ctx)
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusUnauthorized, "Missing user id.")
	}

	var req dto.AppendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid request body.")
	}

	sessionId, ok := parseSessionId(req.SessionId)
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid session id.")
	}

	res, err := c.service.AppendMessage(ctx.Context(), userId, sessionId, req.Role, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid role.")
		case errors.Is(err, service.ErrContentRequired):
			return serverutils.Fail(ctx, fiber.StatusBadRequest, "Content is required.")
		case errors.Is(err, service.ErrSessionNotFound):
			return serverutils.Fail(ctx, fiber.StatusNotFound, "Session not found.")
		default:
			return serverutils.Fail(ctx, fiber.StatusInternalServerError, "Something went wrong. Please try again.")
		}
	}

	if res.Message != nil {
		return serverutils.Ok(ctx, fiber.Map{"message": res.Message})
	}
	return serverutils.Ok(ctx, fiber.Map{
		"userMessage":      res.UserMessage,
		"assistantMessage": res.AssistantMessage,
	})
}

func parseSessionId(raw string) (uuid.UUID, bool) {
	if !serverutils.IsCanonicalUUID(raw) {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	return id, err == nil
}

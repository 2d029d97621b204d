package serverutils

import "github.com/gofiber/fiber/v2"

// Every endpoint answers with the same envelope: {ok: true, ...payload}
// or {ok: false, error}. HTTP status codes are set redundantly.

func Ok(ctx *fiber.Ctx, payload fiber.Map) error {
	body := fiber.Map{"ok": true}
	for k, v := range payload {
		body[k] = v
	}
	return ctx.JSON(body)
}

func Fail(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"ok":    false,
		"error": message,
	})
}

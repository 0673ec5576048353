package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const msgRequiredField = "Please enter the required field"

var validate = validator.New()

func success(c *fiber.Ctx, code int, payload fiber.Map) error {
	body := fiber.Map{"status": "success"}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(code).JSON(body)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "msg": msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "msg": msg})
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "failed", "msg": msg})
}

func conflict(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "failed", "msg": msg})
}

func internalError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "failed", "msg": msg})
}

// paramID parses the :id path segment. Non-numeric ids are a caller
// error, never a silent missed lookup.
func paramID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

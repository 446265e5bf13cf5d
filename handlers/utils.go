package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"note-keeper/services"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// idParam parses the :id route parameter.
func idParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

// serviceError maps service-level errors onto HTTP responses.
func serviceError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, services.ErrNoteNotFound), errors.Is(err, services.ErrTaskNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, services.ErrEmptyContent):
		return badRequest(c, err.Error())
	case errors.Is(err, services.ErrImportFormat):
		return badRequest(c, err.Error())
	default:
		return serverErrorWithDetails(c, message, err)
	}
}

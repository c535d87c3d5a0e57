package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tripjournal/pipeline"
)

// ErrorHandler is installed as the app-wide Fiber error handler. Every error
// returned from a route lands here and is mapped to a status and the uniform
// response envelope. Nothing is swallowed.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return c.Status(fe.Code).JSON(fiber.Map{
			"status":  "error",
			"message": fe.Message,
			"data":    nil,
		})
	case errors.Is(err, pipeline.ErrValidation):
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	case errors.Is(err, pipeline.ErrTripNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"message": "Trip not found",
			"data":    nil,
		})
	case errors.Is(err, pipeline.ErrClassification):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": "Image classification failed",
			"data":    nil,
		})
	case errors.Is(err, pipeline.ErrUpload):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Image upload failed",
			"data":    nil,
		})
	case errors.Is(err, pipeline.ErrPersistence):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to save image record",
			"data":    nil,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Internal server error",
			"data":    nil,
		})
	}
}

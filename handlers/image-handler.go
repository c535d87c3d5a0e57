package handler

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripjournal/database"
	"tripjournal/middleware"
	"tripjournal/models"
	"tripjournal/pipeline"
)

// ImageHandler serves the upload route. It holds the ingestion pipeline
// built once at startup with the long-lived classifier and storage clients.
type ImageHandler struct {
	ingestor *pipeline.Ingestor
}

func NewImageHandler(ingestor *pipeline.Ingestor) *ImageHandler {
	return &ImageHandler{ingestor: ingestor}
}

// Upload handles POST /api/trips/:id with multipart fields "file" and
// "caption". On success it answers 201 with a plain-text confirmation
// carrying the storage URL; validation failures answer 400 with a plain-text
// reason before any external call is made.
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return err
	}

	trip, err := ownedTrip(c, userID)
	if err != nil {
		return err
	}

	caption := c.FormValue("caption")
	if caption == "" {
		return c.Status(fiber.StatusBadRequest).SendString("caption is required")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("file is required")
	}

	blobFile, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error opening the file")
	}
	defer blobFile.Close()

	data, err := io.ReadAll(blobFile)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error reading the file")
	}

	// Deliberately not the request context: once the pipeline starts, steps
	// already issued run to completion even if the client goes away.
	img, err := h.ingestor.Ingest(context.Background(), pipeline.IngestRequest{
		TripID:      trip.ID,
		Data:        data,
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Caption:     caption,
	})
	if err != nil {
		if errors.Is(err, pipeline.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).
		SendString(fmt.Sprintf("image uploaded to %s", img.FileURL))
}

func ListTripImages(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return err
	}

	trip, err := ownedTrip(c, userID)
	if err != nil {
		return err
	}

	db := database.GetDB()
	var images []models.TripImage
	if err := db.Where("trip_id = ?", trip.ID).Order("created_at").Find(&images).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Database error",
			"status":  "error",
			"data":    nil,
		})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Images found", "data": images})
}

// DeleteImage removes the database row. The stored object stays in the
// bucket, matching the behavior on a failed persistence write.
func DeleteImage(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return err
	}

	db := database.GetDB()
	var image models.TripImage
	if err := db.Preload("Trip").First(&image, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Image not found")
		}
		return err
	}

	if image.Trip.UserID != userID {
		return fiber.NewError(fiber.StatusNotFound, "Image not found")
	}

	if err := db.Unscoped().Delete(&image).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete image")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Image deleted",
		"data":    nil,
	})
}

package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripjournal/database"
	"tripjournal/middleware"
	"tripjournal/models"
)

func CreateTrip(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return err
	}

	type NewTrip struct {
		Title string `json:"title"`
	}

	input := new(NewTrip)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"status":  "error",
			"data":    nil,
		})
	}

	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Title is required",
			"status":  "error",
			"data":    nil,
		})
	}

	trip := models.Trip{UserID: userID, Title: input.Title}

	db := database.GetDB()
	if err := db.Create(&trip).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create trip",
			"status":  "error",
			"data":    nil,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Trip created successfully",
		"data":    trip,
	})
}

func GetTrips(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return err
	}

	db := database.GetDB()
	var trips []models.Trip
	if err := db.Where("user_id = ?", userID).Find(&trips).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Database error",
			"status":  "error",
			"data":    nil,
		})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Trips found", "data": trips})
}

func GetTrip(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return err
	}

	trip, err := ownedTrip(c, userID)
	if err != nil {
		return err
	}

	db := database.GetDB()
	if err := db.Preload("Images").First(trip, trip.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Database error",
			"status":  "error",
			"data":    nil,
		})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Trip found", "data": trip})
}

func DeleteTrip(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return err
	}

	trip, err := ownedTrip(c, userID)
	if err != nil {
		return err
	}

	// Hard delete so the foreign key cascade removes the trip's images.
	db := database.GetDB()
	if err := db.Unscoped().Delete(trip).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete trip",
			"status":  "error",
			"data":    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Trip deleted",
		"data":    nil,
	})
}

// ownedTrip resolves the :id route param to a trip owned by userID. A trip
// belonging to someone else reports not-found so ids don't leak.
func ownedTrip(c *fiber.Ctx, userID uint) (*models.Trip, error) {
	tripID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid trip id")
	}

	db := database.GetDB()
	var trip models.Trip
	if err := db.First(&trip, uint(tripID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Trip not found")
		}
		return nil, err
	}

	if trip.UserID != userID {
		return nil, fiber.NewError(fiber.StatusNotFound, "Trip not found")
	}

	return &trip, nil
}

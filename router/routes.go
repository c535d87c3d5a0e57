package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	handler "tripjournal/handlers"
	"tripjournal/middleware"
)

func SetupRoutes(app *fiber.App, images *handler.ImageHandler, captions *handler.CaptionHandler) {
	api := app.Group("/api", logger.New())
	api.Get("/hello", handler.Hello)

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)

	// User
	user := api.Group("/user", middleware.AuthMiddleware())
	user.Get("/:id", handler.GetUser)
	user.Put("/:id", handler.UpdateUser)
	user.Delete("/:id", handler.DeleteUser)

	// Trips and their images
	trips := api.Group("/trips", middleware.AuthMiddleware())
	trips.Post("/", handler.CreateTrip)
	trips.Get("/", handler.GetTrips)
	trips.Get("/:id", handler.GetTrip)
	trips.Delete("/:id", handler.DeleteTrip)
	trips.Post("/:id", images.Upload)
	trips.Get("/:id/images", handler.ListTripImages)

	// Images
	img := api.Group("/images", middleware.AuthMiddleware())
	img.Delete("/:id", handler.DeleteImage)
	img.Post("/caption", captions.Suggest)
}

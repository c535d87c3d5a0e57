package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"google.golang.org/api/option"

	"tripjournal/auth"
	"tripjournal/config"
	"tripjournal/database"
	handler "tripjournal/handlers"
	"tripjournal/models"
	"tripjournal/pipeline"
	"tripjournal/router"
	"tripjournal/storage"
	"tripjournal/vision"
)

func main() {
	db := database.GetDB()

	// Run migrations
	if err := database.MigrateModels(&models.User{}, &models.Trip{}, &models.TripImage{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	defer func() {
		if err := database.CloseDB(); err != nil {
			log.Printf("Error closing the database connection: %v", err)
		}
	}()

	auth.SetupAuthService()

	ctx := context.Background()

	// Credentials are handed to each client explicitly instead of mutating
	// process-wide SDK state. Without the variable both clients fall back to
	// application default credentials.
	var clientOpts []option.ClientOption
	if creds := config.ConfigDefault("GOOGLE_APPLICATION_CREDENTIALS", ""); creds != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(creds))
	}

	uploadTimeout := uploadTimeoutFromEnv()
	uploader, err := storage.NewClientUploader(
		ctx,
		config.Config("GCS_PROJECT_ID"),
		config.Config("GCS_BUCKET_NAME"),
		uploadTimeout,
		clientOpts...,
	)
	if err != nil {
		log.Fatalf("Failed to create storage uploader: %v", err)
	}
	defer uploader.Close()

	classifier, err := vision.NewGoogleClassifier(ctx, clientOpts...)
	if err != nil {
		log.Fatalf("Failed to create vision classifier: %v", err)
	}
	defer classifier.Close()

	ingestor := pipeline.NewIngestor(classifier, uploader, pipeline.NewGormStore(db))
	imageHandler := handler.NewImageHandler(ingestor)

	captionHandler, err := handler.NewCaptionHandler(ctx)
	if err != nil {
		log.Fatalf("Failed to create caption handler: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handler.ErrorHandler,
	})

	router.SetupRoutes(app, imageHandler, captionHandler)

	port := config.ConfigDefault("PORT", "3000")
	log.Printf("Server is listening at the port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func uploadTimeoutFromEnv() time.Duration {
	raw := config.ConfigDefault("UPLOAD_TIMEOUT_SECONDS", "10")
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Printf("Invalid UPLOAD_TIMEOUT_SECONDS %q, using 10s", raw)
		seconds = 10
	}
	return time.Duration(seconds) * time.Second
}

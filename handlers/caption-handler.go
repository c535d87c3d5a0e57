package handler

import (
	"context"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"google.golang.org/genai"
)

const captionPrompt = `You are captioning a photo for a travel journal. Reply with exactly one short sentence describing the scene in the photo. No quotes, no hashtags, no emoji.`

// CaptionHandler suggests a caption for a photo before the user attaches it
// to a trip. It never touches storage or the database.
type CaptionHandler struct {
	client *genai.Client
}

func NewCaptionHandler(ctx context.Context) (*CaptionHandler, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &CaptionHandler{client: client}, nil
}

// Suggest handles POST /api/images/caption with a multipart "file" field.
func (h *CaptionHandler) Suggest(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "No file provided",
			"data":    nil,
		})
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

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(data, contentType),
		genai.NewPartFromText(captionPrompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := h.client.Models.GenerateContent(
		context.Background(),
		"gemini-2.5-flash",
		contents,
		&genai.GenerateContentConfig{},
	)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to generate caption",
			"data":    nil,
		})
	}

	caption := strings.TrimSpace(result.Text())
	if caption == "" {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": "No caption in response",
			"data":    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Caption suggested",
		"data": fiber.Map{
			"caption": caption,
		},
	})
}

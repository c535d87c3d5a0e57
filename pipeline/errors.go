package pipeline

import "errors"

// Error kinds surfaced by Ingest. Handlers and the top-level error handler
// match on these with errors.Is to pick a response status.
var (
	// ErrValidation marks a request rejected before any external call.
	ErrValidation = errors.New("invalid upload request")

	// ErrClassification marks a failed classifier call. An empty detection
	// result is not a classification failure.
	ErrClassification = errors.New("image classification failed")

	// ErrUpload marks a failed object storage upload.
	ErrUpload = errors.New("image upload failed")

	// ErrPersistence marks a failed database write after a successful upload.
	ErrPersistence = errors.New("image persistence failed")

	// ErrTripNotFound is returned when the target trip does not exist (or is
	// not visible to the caller).
	ErrTripNotFound = errors.New("trip not found")
)

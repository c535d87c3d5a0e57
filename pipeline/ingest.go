// Package pipeline runs the per-request image ingestion sequence: validate,
// classify, resolve tags, upload, persist. Each request is independent; the
// pipeline holds no mutable state of its own.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"

	"tripjournal/models"
	"tripjournal/tagging"
)

// Classifier is the vision service seen by the pipeline.
type Classifier interface {
	DetectLandmarks(ctx context.Context, data []byte) ([]string, error)
	DetectLabels(ctx context.Context, data []byte) ([]string, error)
}

// Uploader puts a binary into object storage and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType, name string) (string, error)
}

// Store persists the finished image row.
type Store interface {
	SaveImage(ctx context.Context, img *models.TripImage) error
}

// IngestRequest carries one upload through the pipeline. It lives for the
// duration of a single HTTP request.
type IngestRequest struct {
	TripID      uint
	Data        []byte
	Filename    string
	ContentType string
	Caption     string
}

func (r IngestRequest) validate() error {
	switch {
	case r.TripID == 0:
		return fmt.Errorf("%w: trip id is required", ErrValidation)
	case len(r.Data) == 0:
		return fmt.Errorf("%w: file is required", ErrValidation)
	case r.Filename == "":
		return fmt.Errorf("%w: file name is required", ErrValidation)
	case r.ContentType == "":
		return fmt.Errorf("%w: content type is required", ErrValidation)
	case r.Caption == "":
		return fmt.Errorf("%w: caption is required", ErrValidation)
	}
	return nil
}

// Ingestor orchestrates classification, tagging, upload and persistence for
// uploaded trip images. All collaborators are injected once at startup.
type Ingestor struct {
	classifier Classifier
	uploader   Uploader
	store      Store
}

func NewIngestor(classifier Classifier, uploader Uploader, store Store) *Ingestor {
	return &Ingestor{
		classifier: classifier,
		uploader:   uploader,
		store:      store,
	}
}

// Ingest runs the full sequence for one upload and returns the persisted
// image. Validation failures are reported before any external call. Any
// failing step aborts the request; there are no retries. If the database
// write fails after the upload succeeded the stored object is left behind
// (logged, not deleted).
func (ing *Ingestor) Ingest(ctx context.Context, req IngestRequest) (*models.TripImage, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	landmarks, err := ing.classifier.DetectLandmarks(ctx, req.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassification, err)
	}

	labels, err := ing.classifier.DetectLabels(ctx, req.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassification, err)
	}

	tags := tagging.Resolve(landmarks, labels)

	url, err := ing.uploader.Upload(ctx, req.Data, req.ContentType, req.Filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	img := &models.TripImage{
		TripID:  req.TripID,
		FileURL: url,
		Caption: req.Caption,
	}
	img.SetTags(tags)

	if err := ing.store.SaveImage(ctx, img); err != nil {
		// The blob stays in the bucket; leave a trace for manual cleanup.
		log.Printf("image row not written, object orphaned at %s: %v", url, err)
		if errors.Is(err, ErrTripNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return img, nil
}

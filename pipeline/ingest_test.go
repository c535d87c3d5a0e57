package pipeline

import (
	"context"
	"errors"
	"testing"

	"tripjournal/models"
)

type fakeClassifier struct {
	landmarks []string
	labels    []string
	err       error
	calls     int
}

func (f *fakeClassifier) DetectLandmarks(ctx context.Context, data []byte) ([]string, error) {
	f.calls++
	return f.landmarks, f.err
}

func (f *fakeClassifier) DetectLabels(ctx context.Context, data []byte) ([]string, error) {
	f.calls++
	return f.labels, f.err
}

type fakeUploader struct {
	url   string
	err   error
	calls int
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, contentType, name string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fakeStore struct {
	err   error
	saved []*models.TripImage
}

func (f *fakeStore) SaveImage(ctx context.Context, img *models.TripImage) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, img)
	return nil
}

func validRequest() IngestRequest {
	return IngestRequest{
		TripID:      7,
		Data:        []byte{0xff, 0xd8, 0xff},
		Filename:    "paris.jpg",
		ContentType: "image/jpeg",
		Caption:     "first day in Paris",
	}
}

func TestIngestPersistsLandmarkAndLabels(t *testing.T) {
	classifier := &fakeClassifier{
		landmarks: []string{"Eiffel Tower"},
		labels:    []string{"tower", "sky", "architecture", "landmark", "europe"},
	}
	uploader := &fakeUploader{url: "https://storage.googleapis.com/bucket/trip-images/1_paris.jpg"}
	store := &fakeStore{}

	img, err := NewIngestor(classifier, uploader, store).Ingest(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if len(store.saved) != 1 {
		t.Fatalf("expected 1 saved image, got %d", len(store.saved))
	}
	if img.FileURL != uploader.url {
		t.Fatalf("file url = %q, want %q", img.FileURL, uploader.url)
	}
	if img.Caption != "first day in Paris" {
		t.Fatalf("caption = %q", img.Caption)
	}

	want := []string{"Eiffel Tower", "tower", "sky", "architecture"}
	got := img.Tags()
	if len(got) != len(want) {
		t.Fatalf("tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tags = %v, want %v", got, want)
		}
	}
	if img.Tag5 != nil {
		t.Fatalf("tag5 should be empty, got %q", *img.Tag5)
	}
}

func TestIngestMissingCaptionFailsBeforeAnyExternalCall(t *testing.T) {
	classifier := &fakeClassifier{}
	uploader := &fakeUploader{}
	store := &fakeStore{}

	req := validRequest()
	req.Caption = ""

	_, err := NewIngestor(classifier, uploader, store).Ingest(context.Background(), req)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	if classifier.calls != 0 || uploader.calls != 0 || len(store.saved) != 0 {
		t.Fatalf("external collaborators were called on a validation failure")
	}
}

func TestIngestMissingFileFailsBeforeAnyExternalCall(t *testing.T) {
	classifier := &fakeClassifier{}
	uploader := &fakeUploader{}
	store := &fakeStore{}

	req := validRequest()
	req.Data = nil

	_, err := NewIngestor(classifier, uploader, store).Ingest(context.Background(), req)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if classifier.calls != 0 || uploader.calls != 0 {
		t.Fatalf("external collaborators were called on a validation failure")
	}
}

func TestIngestClassifierFailureStopsThePipeline(t *testing.T) {
	classifier := &fakeClassifier{err: errors.New("vision unreachable")}
	uploader := &fakeUploader{}
	store := &fakeStore{}

	_, err := NewIngestor(classifier, uploader, store).Ingest(context.Background(), validRequest())
	if !errors.Is(err, ErrClassification) {
		t.Fatalf("expected ErrClassification, got %v", err)
	}

	if uploader.calls != 0 {
		t.Fatalf("upload attempted after classification failed")
	}
	if len(store.saved) != 0 {
		t.Fatalf("row written after classification failed")
	}
}

func TestIngestUploadFailureWritesNoRow(t *testing.T) {
	classifier := &fakeClassifier{labels: []string{"beach"}}
	uploader := &fakeUploader{err: errors.New("bucket gone")}
	store := &fakeStore{}

	_, err := NewIngestor(classifier, uploader, store).Ingest(context.Background(), validRequest())
	if !errors.Is(err, ErrUpload) {
		t.Fatalf("expected ErrUpload, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("row written after upload failed")
	}
}

func TestIngestPersistenceFailureAfterUpload(t *testing.T) {
	classifier := &fakeClassifier{labels: []string{"beach"}}
	uploader := &fakeUploader{url: "https://storage.googleapis.com/bucket/trip-images/2_beach.jpg"}
	store := &fakeStore{err: errors.New("connection reset")}

	_, err := NewIngestor(classifier, uploader, store).Ingest(context.Background(), validRequest())
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}

	// The upload already happened; the blob is orphaned, not rolled back.
	if uploader.calls != 1 {
		t.Fatalf("expected exactly one upload, got %d", uploader.calls)
	}
}

func TestIngestTripNotFoundSurfacesAsIs(t *testing.T) {
	classifier := &fakeClassifier{}
	uploader := &fakeUploader{url: "https://example.invalid/x"}
	store := &fakeStore{err: ErrTripNotFound}

	_, err := NewIngestor(classifier, uploader, store).Ingest(context.Background(), validRequest())
	if !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
	if errors.Is(err, ErrPersistence) {
		t.Fatalf("trip-not-found should not be wrapped as a persistence failure")
	}
}

func TestIngestNothingDetectedStillPersists(t *testing.T) {
	classifier := &fakeClassifier{}
	uploader := &fakeUploader{url: "https://storage.googleapis.com/bucket/trip-images/3_fog.jpg"}
	store := &fakeStore{}

	img, err := NewIngestor(classifier, uploader, store).Ingest(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if len(img.Tags()) != 0 {
		t.Fatalf("expected no tags, got %v", img.Tags())
	}
	if img.Tag1 != nil || img.Tag2 != nil || img.Tag3 != nil || img.Tag4 != nil || img.Tag5 != nil {
		t.Fatalf("tag slots should all be empty")
	}
	if img.FileURL == "" || img.Caption == "" {
		t.Fatalf("caption-only image must still carry url and caption")
	}
	if len(store.saved) != 1 {
		t.Fatalf("caption-only image was not persisted")
	}
}

// Package storage uploads image binaries to a Google Cloud Storage bucket
// and hands back publicly resolvable URLs.
package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const tripImagesPath = "trip-images/"

// ClientUploader wraps a long-lived GCS client. Construct it once in main and
// inject it into the ingestion pipeline.
type ClientUploader struct {
	cl         *gcs.Client
	projectID  string
	bucketName string
	uploadPath string
	timeout    time.Duration
}

func NewClientUploader(ctx context.Context, projectID, bucketName string, timeout time.Duration, opts ...option.ClientOption) (*ClientUploader, error) {
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}

	return &ClientUploader{
		cl:         client,
		projectID:  projectID,
		bucketName: bucketName,
		uploadPath: tripImagesPath,
		timeout:    timeout,
	}, nil
}

// Upload writes data to the bucket under the trip-images prefix with a
// timestamp suffix on the original file name to avoid collisions, and returns
// the public URL. A failed upload is returned as-is; nothing is retried.
func (u *ClientUploader) Upload(ctx context.Context, data []byte, contentType, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	timestamp := strconv.FormatInt(time.Now().UnixNano(), 10)
	objectPath := u.uploadPath + timestamp + "_" + name

	wc := u.cl.Bucket(u.bucketName).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		return "", fmt.Errorf("storage write: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("storage close: %w", err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, objectPath)
	return url, nil
}

func (u *ClientUploader) Close() error {
	return u.cl.Close()
}

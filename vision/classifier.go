// Package vision wraps the Cloud Vision image annotation client behind the
// two detection calls the ingestion pipeline needs.
package vision

import (
	"context"
	"fmt"

	visionapi "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

// maxAnnotations caps how many annotations we request per call. The tag
// policy only ever consumes five, a little headroom costs nothing.
const maxAnnotations = 10

// GoogleClassifier detects landmarks and labels via the Cloud Vision API.
// Construct one at process start and share it across requests.
type GoogleClassifier struct {
	client *visionapi.ImageAnnotatorClient
}

func NewGoogleClassifier(ctx context.Context, opts ...option.ClientOption) (*GoogleClassifier, error) {
	client, err := visionapi.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("vision client: %w", err)
	}

	return &GoogleClassifier{client: client}, nil
}

// DetectLandmarks returns the descriptions of recognized landmarks in the
// service's own confidence order. An empty slice means nothing was
// recognized and is not an error.
func (g *GoogleClassifier) DetectLandmarks(ctx context.Context, data []byte) ([]string, error) {
	annotations, err := g.client.DetectLandmarks(ctx, &visionpb.Image{Content: data}, nil, maxAnnotations)
	if err != nil {
		return nil, fmt.Errorf("detect landmarks: %w", err)
	}

	return descriptions(annotations), nil
}

// DetectLabels returns generic label descriptions ranked by the service.
func (g *GoogleClassifier) DetectLabels(ctx context.Context, data []byte) ([]string, error) {
	annotations, err := g.client.DetectLabels(ctx, &visionpb.Image{Content: data}, nil, maxAnnotations)
	if err != nil {
		return nil, fmt.Errorf("detect labels: %w", err)
	}

	return descriptions(annotations), nil
}

func (g *GoogleClassifier) Close() error {
	return g.client.Close()
}

func descriptions(annotations []*visionpb.EntityAnnotation) []string {
	out := make([]string, 0, len(annotations))
	for _, a := range annotations {
		if a.GetDescription() != "" {
			out = append(out, a.GetDescription())
		}
	}
	return out
}

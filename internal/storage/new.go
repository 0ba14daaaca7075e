package storage

import (
	"context"
	"fmt"

	gcs "cloud.google.com/go/storage"

	"github.com/lehoangvu-dev/vidbrief/internal/logger"
)

type implStore struct {
	client *gcs.Client
	bucket string
	logger logger.Logger
}

// New creates a Store backed by a Google Cloud Storage bucket
func New(ctx context.Context, bucket string, log logger.Logger) (Store, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &implStore{
		client: client,
		bucket: bucket,
		logger: log,
	}, nil
}

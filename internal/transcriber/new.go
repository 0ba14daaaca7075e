package transcriber

import (
	"context"
	"fmt"

	speech "cloud.google.com/go/speech/apiv1"

	"github.com/lehoangvu-dev/vidbrief/internal/logger"
)

type implTranscriber struct {
	client   *speech.Client
	language string
	logger   logger.Logger
}

// New creates a Transcriber backed by Google Cloud Speech-to-Text
func New(ctx context.Context, language string, log logger.Logger) (Transcriber, error) {
	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create speech client: %w", err)
	}

	return &implTranscriber{
		client:   client,
		language: language,
		logger:   log,
	}, nil
}

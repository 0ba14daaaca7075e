package summarizer

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/lehoangvu-dev/vidbrief/internal/logger"
)

type implSummarizer struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// New creates a Summarizer backed by the Gemini API
func New(ctx context.Context, apiKey, model string, log logger.Logger) (Summarizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &implSummarizer{
		client: client,
		model:  model,
		logger: log,
	}, nil
}

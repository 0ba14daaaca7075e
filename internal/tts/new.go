package tts

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"

	"github.com/lehoangvu-dev/vidbrief/internal/logger"
)

type implSynthesizer struct {
	client   *texttospeech.Client
	language string
	voice    string
	logger   logger.Logger
}

// New creates a Synthesizer backed by Google Cloud Text-to-Speech
func New(ctx context.Context, language, voice string, log logger.Logger) (Synthesizer, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create text-to-speech client: %w", err)
	}

	return &implSynthesizer{
		client:   client,
		language: language,
		voice:    voice,
		logger:   log,
	}, nil
}

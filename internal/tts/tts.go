package tts

import (
	"context"
	"fmt"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

func (s *implSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	s.logger.Info(ctx, "Synthesizing speech (%d characters)", len(text))

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: s.language,
			Name:         s.voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := s.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	if len(resp.GetAudioContent()) == 0 {
		return nil, fmt.Errorf("empty audio from synthesis")
	}

	return resp.GetAudioContent(), nil
}

func (s *implSynthesizer) Close() error {
	return s.client.Close()
}

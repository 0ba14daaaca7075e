package transcriber

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/speech/apiv1/speechpb"
)

func (t *implTranscriber) Transcribe(ctx context.Context, storageRef string) (string, error) {
	t.logger.Info(ctx, "Starting transcription: %s", storageRef)

	op, err := t.client.LongRunningRecognize(ctx, &speechpb.LongRunningRecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   speechpb.RecognitionConfig_MP3,
			SampleRateHertz:            16000,
			LanguageCode:               t.language,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Uri{Uri: storageRef},
		},
	})
	if err != nil {
		return "", fmt.Errorf("start recognition: %w", err)
	}

	resp, err := op.Wait(ctx)
	if err != nil {
		return "", fmt.Errorf("recognition failed: %w", err)
	}

	transcript := formatTranscript(resp)
	if transcript == "" {
		return "", fmt.Errorf("no speech recognized in %s", storageRef)
	}

	t.logger.Info(ctx, "Transcription completed: %d characters", len(transcript))
	return transcript, nil
}

func (t *implTranscriber) Close() error {
	return t.client.Close()
}

// formatTranscript renders each recognized segment as a "[mm:ss] text" line,
// stamped with the segment's end offset.
func formatTranscript(resp *speechpb.LongRunningRecognizeResponse) string {
	var lines []string
	for _, result := range resp.GetResults() {
		alts := result.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		text := strings.TrimSpace(alts[0].GetTranscript())
		if text == "" {
			continue
		}

		offset := result.GetResultEndTime().AsDuration()
		lines = append(lines, fmt.Sprintf("[%02d:%02d] %s",
			int(offset.Minutes()), int(offset.Seconds())%60, text))
	}
	return strings.Join(lines, "\n")
}

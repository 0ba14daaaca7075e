package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoAudioStream is returned when the source has no resolvable audio track.
var ErrNoAudioStream = errors.New("no audio stream in source")

// ExtractAndUpload extracts audio as 16kHz mono MP3 and uploads it.
// This format keeps blobs small while staying optimal for speech recognition.
func (e *implExtractor) ExtractAndUpload(ctx context.Context, sourceRef, objectName string) (string, error) {
	e.logger.Info(ctx, "Extracting audio from source: %s", sourceRef)

	// FFmpeg arguments for audio extraction
	// -i: Input source (local path or URL)
	// -vn: No video (audio only)
	// -ar 16000: Sample rate 16kHz (optimal for speech recognition)
	// -ac 1: Mono channel
	// -f mp3: MP3 container piped to stdout
	args := []string{
		"-i", sourceRef,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "libmp3lame",
		"-f", "mp3",
		"-",
	}

	audio, err := e.executor.Output(ctx, "ffmpeg", args...)
	if err != nil {
		if isNoAudioError(err) {
			return "", fmt.Errorf("%w: %s", ErrNoAudioStream, sourceRef)
		}
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}
	if len(audio) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoAudioStream, sourceRef)
	}

	ref, err := e.store.Upload(ctx, objectName, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("upload audio: %w", err)
	}

	e.logger.Info(ctx, "Audio extracted and uploaded: %s (%d bytes)", ref, len(audio))
	return ref, nil
}

// isNoAudioError matches the ffmpeg stderr lines emitted when the input has
// no usable audio track.
func isNoAudioError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "does not contain any stream") ||
		strings.Contains(msg, "Stream map 'a' matches no streams") ||
		strings.Contains(msg, "Output file does not contain any stream")
}

package tts

import "context"

// Synthesizer converts text into spoken audio.
type Synthesizer interface {
	// Synthesize returns MP3-encoded speech for the given text.
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Close() error
}

package summarizer

import "context"

// Summarizer produces LLM-generated summaries of transcripts or video sources.
type Summarizer interface {
	// SummarizeText summarizes a timestamped transcript.
	SummarizeText(ctx context.Context, transcript string) (string, error)
	// SummarizeSource summarizes a video source directly, without a
	// transcription step.
	SummarizeSource(ctx context.Context, sourceRef string) (string, error)
}

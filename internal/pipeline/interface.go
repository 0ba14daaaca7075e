package pipeline

import (
	"context"
	"errors"
)

// Kind selects which pipeline a submission runs.
type Kind string

const (
	// KindAudio extracts and uploads audio, transcribes it, then
	// summarizes the transcript.
	KindAudio Kind = "audio"
	// KindVideo summarizes the video source directly.
	KindVideo Kind = "video"
)

// ErrMissingSource is returned when a submission has no source reference.
var ErrMissingSource = errors.New("source reference is required")

// Dispatcher accepts pipeline requests and runs them in the background.
type Dispatcher interface {
	// Submit validates sourceRef, registers a PENDING job, and launches
	// the chosen pipeline without blocking. The returned job id can be
	// polled for the outcome.
	Submit(ctx context.Context, sourceRef string, kind Kind) (string, error)
}

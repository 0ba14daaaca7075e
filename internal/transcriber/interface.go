package transcriber

import "context"

// Transcriber converts an uploaded audio object into timestamped text.
type Transcriber interface {
	// Transcribe recognizes speech in the object at storageRef (a gs://
	// reference) and returns the transcript, one "[mm:ss] text" line per
	// recognized segment.
	Transcribe(ctx context.Context, storageRef string) (string, error)
	Close() error
}

package media

import "context"

// Extractor resolves the audio track of a video source and uploads it to
// object storage.
type Extractor interface {
	// ExtractAndUpload pulls the audio stream from sourceRef (a URL or a
	// local path), transcodes it for speech recognition, and stores it
	// under objectName. Returns the storage reference of the upload.
	ExtractAndUpload(ctx context.Context, sourceRef, objectName string) (string, error)
}

package storage

import (
	"context"
	"io"
)

// Store is the object-storage capability used for temporary audio blobs.
type Store interface {
	// Upload streams r into the bucket under objectName and returns the
	// gs:// reference of the written object.
	Upload(ctx context.Context, objectName string, r io.Reader) (string, error)
	// Delete removes objectName from the bucket. Missing objects are not
	// an error; deletion of temp artifacts is best-effort at the caller.
	Delete(ctx context.Context, objectName string) error
}

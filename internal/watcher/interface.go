package watcher

import "context"

// Watcher submits video files dropped into a directory to the pipeline.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

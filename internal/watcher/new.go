package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/lehoangvu-dev/vidbrief/internal/logger"
	"github.com/lehoangvu-dev/vidbrief/internal/pipeline"
)

type implWatcher struct {
	inputDir   string
	dispatcher pipeline.Dispatcher
	logger     logger.Logger
	watcher    *fsnotify.Watcher
}

// New creates a Watcher feeding inputDir drops into the audio pipeline
func New(inputDir string, dispatcher pipeline.Dispatcher, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir:   inputDir,
		dispatcher: dispatcher,
		logger:     log,
		watcher:    fsw,
	}, nil
}

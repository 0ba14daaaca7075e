package media

import (
	"github.com/lehoangvu-dev/vidbrief/internal/logger"
	"github.com/lehoangvu-dev/vidbrief/internal/storage"
	"github.com/lehoangvu-dev/vidbrief/pkg/executor"
)

type implExtractor struct {
	executor executor.Executor
	store    storage.Store
	logger   logger.Logger
}

// New creates an Extractor that shells out to ffmpeg and uploads the result
func New(exec executor.Executor, store storage.Store, log logger.Logger) Extractor {
	return &implExtractor{
		executor: exec,
		store:    store,
		logger:   log,
	}
}

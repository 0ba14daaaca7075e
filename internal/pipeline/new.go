package pipeline

import (
	"github.com/lehoangvu-dev/vidbrief/internal/logger"
	"github.com/lehoangvu-dev/vidbrief/internal/media"
	"github.com/lehoangvu-dev/vidbrief/internal/registry"
	"github.com/lehoangvu-dev/vidbrief/internal/storage"
	"github.com/lehoangvu-dev/vidbrief/internal/summarizer"
	"github.com/lehoangvu-dev/vidbrief/internal/transcriber"
	"github.com/lehoangvu-dev/vidbrief/pkg/retry"
)

type implDispatcher struct {
	registry    registry.Registry
	extractor   media.Extractor
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	store       storage.Store
	retryCfg    retry.Config
	logger      logger.Logger
}

// New creates a Dispatcher wiring the pipeline collaborators together
func New(
	reg registry.Registry,
	extractor media.Extractor,
	tr transcriber.Transcriber,
	sum summarizer.Summarizer,
	store storage.Store,
	retryCfg retry.Config,
	log logger.Logger,
) Dispatcher {
	return &implDispatcher{
		registry:    reg,
		extractor:   extractor,
		transcriber: tr,
		summarizer:  sum,
		store:       store,
		retryCfg:    retryCfg,
		logger:      log,
	}
}

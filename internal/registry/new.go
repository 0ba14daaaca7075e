package registry

import (
	"sync"
	"time"

	"github.com/lehoangvu-dev/vidbrief/internal/job"
	"github.com/lehoangvu-dev/vidbrief/internal/logger"
)

type implRegistry struct {
	mu     sync.Mutex
	jobs   map[string]*job.Record
	timers map[string]*time.Timer
	logger logger.Logger
}

// New creates an empty Registry instance
func New(log logger.Logger) Registry {
	return &implRegistry{
		jobs:   make(map[string]*job.Record),
		timers: make(map[string]*time.Timer),
		logger: log,
	}
}

package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/lehoangvu-dev/vidbrief/internal/job"
)

func (d *implDispatcher) Submit(ctx context.Context, sourceRef string, kind Kind) (string, error) {
	if strings.TrimSpace(sourceRef) == "" {
		return "", ErrMissingSource
	}

	id := job.NewID()
	d.registry.Create(id)
	d.logger.Info(ctx, "Job %s accepted (%s pipeline): %s", id, kind, sourceRef)

	// The pipeline outlives the submitting request, so it must not die with
	// the request context.
	go d.run(context.WithoutCancel(ctx), id, sourceRef, kind)

	return id, nil
}

// run executes the pipeline and always records a terminal state, whatever
// the failure mode.
func (d *implDispatcher) run(ctx context.Context, id, sourceRef string, kind Kind) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error(ctx, "Job %s panicked: %v", id, r)
			d.registry.Fail(id, fmt.Sprintf("pipeline panic: %v", r))
		}
	}()

	var summary string
	var err error
	switch kind {
	case KindVideo:
		summary, err = d.runVideo(ctx, id, sourceRef)
	default:
		summary, err = d.runAudio(ctx, id, sourceRef)
	}

	if err != nil {
		d.logger.Error(ctx, "Job %s failed: %v", id, err)
		d.registry.Fail(id, err.Error())
		return
	}

	d.logger.Info(ctx, "Job %s completed (%d characters)", id, len(summary))
	d.registry.Complete(id, summary)
}

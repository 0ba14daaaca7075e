package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lehoangvu-dev/vidbrief/internal/job"
	"github.com/lehoangvu-dev/vidbrief/pkg/retry"
)

// runAudio extracts audio to a temporary storage object, transcribes it,
// and summarizes the transcript. The temp object is deleted on every exit
// path; a deletion failure never masks the pipeline's own outcome.
func (d *implDispatcher) runAudio(ctx context.Context, id, sourceRef string) (string, error) {
	objectName := fmt.Sprintf("audio-%d.mp3", time.Now().UnixNano())
	defer d.cleanupTempObject(ctx, objectName)

	d.registry.UpdateStatus(id, job.StatusStreaming)
	storageRef, err := d.extractor.ExtractAndUpload(ctx, sourceRef, objectName)
	if err != nil {
		return "", fmt.Errorf("extract audio: %w", err)
	}

	d.registry.UpdateStatus(id, job.StatusTranscribing)
	transcript, err := d.transcriber.Transcribe(ctx, storageRef)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	d.registry.UpdateStatus(id, job.StatusSummarizing)
	summary, err := retry.Do(ctx, d.retryCfg, "summarize transcript", func(ctx context.Context) (string, error) {
		return d.summarizer.SummarizeText(ctx, transcript)
	})
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	if strings.TrimSpace(summary) == "" {
		return "", errors.New("summary generation failed")
	}

	return summary, nil
}

// runVideo hands the source straight to the summarizer. No storage object is
// created, so there is nothing to clean up.
func (d *implDispatcher) runVideo(ctx context.Context, id, sourceRef string) (string, error) {
	d.registry.UpdateStatus(id, job.StatusSummarizing)
	summary, err := retry.Do(ctx, d.retryCfg, "summarize video", func(ctx context.Context) (string, error) {
		return d.summarizer.SummarizeSource(ctx, sourceRef)
	})
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	if strings.TrimSpace(summary) == "" {
		return "", errors.New("summary generation failed")
	}

	return summary, nil
}

// cleanupTempObject deletes a temporary audio object, logging failures
func (d *implDispatcher) cleanupTempObject(ctx context.Context, objectName string) {
	if err := d.store.Delete(ctx, objectName); err != nil {
		d.logger.Warn(ctx, "Failed to cleanup temp object %s: %v", objectName, err)
	} else {
		d.logger.Debug(ctx, "Cleaned up temp object: %s", objectName)
	}
}

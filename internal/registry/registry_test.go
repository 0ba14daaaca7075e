package registry

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehoangvu-dev/vidbrief/internal/job"
	"github.com/lehoangvu-dev/vidbrief/internal/logger"
)

func newTestRegistry() Registry {
	return New(logger.NewWithWriter(io.Discard, "error"))
}

func TestCreateAndGet(t *testing.T) {
	reg := newTestRegistry()
	reg.Create("job-1-1")

	rec, ok := reg.Get("job-1-1")
	require.True(t, ok)
	assert.Equal(t, job.StatusPending, rec.Status)
	assert.Nil(t, rec.Result)
	assert.Nil(t, rec.Error)

	_, ok = reg.Get("job-unknown")
	assert.False(t, ok)
}

func TestCreateExistingIsNoop(t *testing.T) {
	reg := newTestRegistry()
	reg.Create("job-1-1")
	reg.UpdateStatus("job-1-1", job.StatusSummarizing)

	reg.Create("job-1-1")

	rec, _ := reg.Get("job-1-1")
	assert.Equal(t, job.StatusSummarizing, rec.Status)
}

func TestUpdateStatusPreservesFields(t *testing.T) {
	reg := newTestRegistry()
	reg.Create("job-1-1")

	reg.UpdateStatus("job-1-1", job.StatusStreaming)
	rec, _ := reg.Get("job-1-1")
	assert.Equal(t, job.StatusStreaming, rec.Status)
	assert.Nil(t, rec.Result)
	assert.Nil(t, rec.Error)

	// Missing job must never panic.
	reg.UpdateStatus("job-unknown", job.StatusSummarizing)
}

func TestCompleteAndFail(t *testing.T) {
	reg := newTestRegistry()

	reg.Create("job-done")
	reg.Complete("job-done", "a summary")
	rec, _ := reg.Get("job-done")
	assert.Equal(t, job.StatusCompleted, rec.Status)
	require.NotNil(t, rec.Result)
	assert.Equal(t, "a summary", *rec.Result)
	assert.Nil(t, rec.Error)

	reg.Create("job-bad")
	reg.Fail("job-bad", "transcribe: boom")
	rec, _ = reg.Get("job-bad")
	assert.Equal(t, job.StatusFailed, rec.Status)
	require.NotNil(t, rec.Error)
	assert.Equal(t, "transcribe: boom", *rec.Error)
	assert.Nil(t, rec.Result)
}

func TestDelete(t *testing.T) {
	reg := newTestRegistry()
	reg.Create("job-1-1")
	reg.Delete("job-1-1")

	_, ok := reg.Get("job-1-1")
	assert.False(t, ok)

	// Deleting an unknown id is a no-op.
	reg.Delete("job-unknown")
}

func TestScheduleExpiry(t *testing.T) {
	reg := newTestRegistry()
	reg.Create("job-1-1")
	reg.Complete("job-1-1", "done")

	reg.ScheduleExpiry("job-1-1", 20*time.Millisecond)

	// Still visible inside the grace window.
	rec, ok := reg.Get("job-1-1")
	require.True(t, ok)
	assert.Equal(t, job.StatusCompleted, rec.Status)

	require.Eventually(t, func() bool {
		_, ok := reg.Get("job-1-1")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestScheduleExpiryIdempotent(t *testing.T) {
	reg := newTestRegistry()
	reg.Create("job-1-1")
	reg.Complete("job-1-1", "done")

	// A poll race must not stack duplicate deletions.
	reg.ScheduleExpiry("job-1-1", 30*time.Millisecond)
	reg.ScheduleExpiry("job-1-1", time.Nanosecond)

	time.Sleep(10 * time.Millisecond)
	_, ok := reg.Get("job-1-1")
	assert.True(t, ok, "second schedule must not shorten the grace window")

	require.Eventually(t, func() bool {
		_, ok := reg.Get("job-1-1")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestScheduleExpiryUnknownJob(t *testing.T) {
	reg := newTestRegistry()
	reg.ScheduleExpiry("job-unknown", time.Nanosecond)
}

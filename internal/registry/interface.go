package registry

import (
	"time"

	"github.com/lehoangvu-dev/vidbrief/internal/job"
)

// Registry is the in-memory store of job records. It is the sole owner of
// records; all access goes through lookup by id. Every operation is O(1)
// and never blocks beyond its mutex.
type Registry interface {
	// Create inserts a fresh PENDING record. Callers supply fresh ids; an
	// existing id is left untouched.
	Create(id string)
	// Get returns a snapshot of the record, or false when unknown.
	Get(id string) (job.Record, bool)
	// UpdateStatus replaces the status in place, preserving result and
	// error. A missing id is a no-op.
	UpdateStatus(id string, status job.Status)
	// Complete moves the job to COMPLETED with the given result.
	Complete(id, result string)
	// Fail moves the job to FAILED with the given error message.
	Fail(id, errMsg string)
	// Delete removes the record and cancels any pending expiry.
	Delete(id string)
	// ScheduleExpiry deletes the record after grace elapses. Scheduling is
	// idempotent per id; repeated calls within the window do nothing.
	ScheduleExpiry(id string, grace time.Duration)
}

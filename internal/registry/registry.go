package registry

import (
	"context"
	"time"

	"github.com/lehoangvu-dev/vidbrief/internal/job"
)

func (r *implRegistry) Create(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[id]; exists {
		return
	}
	r.jobs[id] = &job.Record{Status: job.StatusPending}
}

func (r *implRegistry) Get(id string) (job.Record, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.jobs[id]
	if !ok {
		return job.Record{}, false
	}
	return *rec, true
}

func (r *implRegistry) UpdateStatus(id string, status job.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec, ok := r.jobs[id]; ok {
		rec.Status = status
	}
}

func (r *implRegistry) Complete(id, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; ok {
		r.jobs[id] = &job.Record{Status: job.StatusCompleted, Result: &result}
	}
}

func (r *implRegistry) Fail(id, errMsg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; ok {
		r.jobs[id] = &job.Record{Status: job.StatusFailed, Error: &errMsg}
	}
}

func (r *implRegistry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteLocked(id)
}

func (r *implRegistry) ScheduleExpiry(id string, grace time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return
	}
	if _, scheduled := r.timers[id]; scheduled {
		return
	}

	r.timers[id] = time.AfterFunc(grace, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.deleteLocked(id)
		r.logger.Debug(context.Background(), "job %s expired after grace window", id)
	})
}

// deleteLocked removes the record and stops any pending expiry timer.
// Callers must hold r.mu.
func (r *implRegistry) deleteLocked(id string) {
	delete(r.jobs, id)
	if t, ok := r.timers[id]; ok {
		t.Stop()
		delete(r.timers, id)
	}
}

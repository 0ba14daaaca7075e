package job

import (
	"fmt"
	"math/rand"
	"time"
)

// Status tracks each pipeline stage for a summarization job.
type Status string

const (
	StatusPending      Status = "PENDING"
	StatusStreaming    Status = "STREAMING"
	StatusTranscribing Status = "TRANSCRIBING"
	StatusSummarizing  Status = "SUMMARIZING"
	StatusCompleted    Status = "COMPLETED"
	StatusFailed       Status = "FAILED"
)

// Terminal reports whether no further transitions follow this status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Record is the poll-visible state of one job. Exactly one of Result/Error
// is set once the job is terminal; both are nil before that.
type Record struct {
	Status Status  `json:"status"`
	Result *string `json:"result"`
	Error  *string `json:"error"`
}

// NewID mints a process-unique job identifier. Uniqueness is only required
// within the process lifetime, so a timestamp plus a random suffix is enough.
func NewID() string {
	return fmt.Sprintf("job-%d-%d", time.Now().UnixMilli(), rand.Intn(1_000_000))
}

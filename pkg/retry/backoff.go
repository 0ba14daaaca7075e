package retry

import (
	"math/rand"
	"time"
)

// Backoff computes exponential wait times between retry attempts.
type Backoff struct {
	Initial time.Duration
	Factor  float64
	Jitter  time.Duration
}

// Duration returns the wait before retrying after the given failed attempt
// (1-based): Initial * Factor^(attempt-1) plus a uniform jitter in [0, Jitter).
func (b Backoff) Duration(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	d := float64(b.Initial)
	for i := 1; i < attempt; i++ {
		d *= b.Factor
	}

	wait := time.Duration(d)
	if b.Jitter > 0 {
		wait += time.Duration(rand.Int63n(int64(b.Jitter)))
	}
	return wait
}

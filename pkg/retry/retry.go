// Package retry runs unreliable remote operations under a bounded
// exponential-backoff policy, distinguishing transient upstream failures
// from fatal ones.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lehoangvu-dev/vidbrief/internal/logger"
)

// TransientError marks a failure as a transient upstream condition that is
// worth retrying. Collaborator layers set Code to the HTTP-status-like marker
// reported by the remote service.
type TransientError struct {
	Code int
	Err  error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient upstream error (%d): %v", e.Code, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// retryableCodes are the upstream conditions considered transient:
// service unavailable, rate limited, request timeout.
var retryableCodes = map[int]bool{503: true, 429: true, 408: true}

// MarkTransient wraps err as transient when code signals a retryable
// condition; any other code leaves err untouched.
func MarkTransient(code int, err error) error {
	if err == nil {
		return nil
	}
	if !retryableCodes[code] {
		return err
	}
	return &TransientError{Code: code, Err: err}
}

// IsTransient reports whether err carries a transient marker anywhere in
// its chain.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// Config bounds a retry loop.
type Config struct {
	MaxAttempts int
	Backoff     Backoff
	Logger      logger.Logger

	// Sleep is overridable in tests; nil means a context-aware timer wait.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultConfig matches the service's summarization retry policy: 5 attempts,
// 1s initial delay doubling per attempt, up to 500ms of jitter.
func DefaultConfig(log logger.Logger) Config {
	return Config{
		MaxAttempts: 5,
		Backoff: Backoff{
			Initial: 1000 * time.Millisecond,
			Factor:  2.0,
			Jitter:  500 * time.Millisecond,
		},
		Logger: log,
	}
}

// Do runs op until it succeeds, fails with a fatal error, or exhausts the
// attempt budget. The first attempt never waits; a fatal error is re-raised
// immediately, and the last retryable failure is re-raised rather than
// swallowed.
func Do[T any](ctx context.Context, cfg Config, label string, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	sleep := cfg.Sleep
	if sleep == nil {
		sleep = waitFor
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if !IsTransient(err) {
			return zero, err
		}

		lastErr = err
		if attempt == cfg.MaxAttempts {
			break
		}

		wait := cfg.Backoff.Duration(attempt)
		if cfg.Logger != nil {
			cfg.Logger.Warn(ctx, "%s: attempt %d/%d failed (%v), retrying in %s",
				label, attempt, cfg.MaxAttempts, err, wait)
		}
		if err := sleep(ctx, wait); err != nil {
			return zero, fmt.Errorf("%s: %w", label, err)
		}
	}

	return zero, fmt.Errorf("%s: retries exhausted after %d attempts: %w", label, cfg.MaxAttempts, lastErr)
}

func waitFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

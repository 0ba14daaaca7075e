package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(sleeps *[]time.Duration) Config {
	return Config{
		MaxAttempts: 5,
		Backoff: Backoff{
			Initial: 1000 * time.Millisecond,
			Factor:  2.0,
			Jitter:  500 * time.Millisecond,
		},
		Sleep: func(_ context.Context, d time.Duration) error {
			*sleeps = append(*sleeps, d)
			return nil
		},
	}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	var sleeps []time.Duration
	calls := 0

	result, err := Do(context.Background(), testConfig(&sleeps), "op", func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
	assert.Empty(t, sleeps, "first attempt must not wait")
}

func TestDoRetriesTransientThenSucceeds(t *testing.T) {
	var sleeps []time.Duration
	calls := 0

	result, err := Do(context.Background(), testConfig(&sleeps), "op", func(ctx context.Context) (string, error) {
		calls++
		if calls < 5 {
			return "", MarkTransient(503, errors.New("service unavailable"))
		}
		return "summary", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "summary", result)
	assert.Equal(t, 5, calls)
	require.Len(t, sleeps, 4)

	// Each computed wait is at least 1000ms * 2^(n-1) and the sequence
	// strictly increases even with jitter applied.
	for i, wait := range sleeps {
		min := 1000 * time.Millisecond << i
		assert.GreaterOrEqual(t, wait, min)
		assert.Less(t, wait, min+500*time.Millisecond)
	}
}

func TestDoFatalErrorImmediate(t *testing.T) {
	var sleeps []time.Duration
	calls := 0
	fatal := errors.New("malformed input")

	_, err := Do(context.Background(), testConfig(&sleeps), "op", func(ctx context.Context) (string, error) {
		calls++
		return "", fatal
	})

	require.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
	assert.Empty(t, sleeps)
}

func TestDoExhaustsBudget(t *testing.T) {
	var sleeps []time.Duration
	calls := 0

	_, err := Do(context.Background(), testConfig(&sleeps), "summarize", func(ctx context.Context) (string, error) {
		calls++
		return "", MarkTransient(429, errors.New("rate limited"))
	})

	require.Error(t, err)
	assert.Equal(t, 5, calls)
	assert.Len(t, sleeps, 4)
	assert.True(t, IsTransient(err), "exhausted error must carry the last cause")
	assert.Contains(t, err.Error(), "retries exhausted")
}

func TestDoCancelledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := Config{
		MaxAttempts: 5,
		Backoff:     Backoff{Initial: time.Millisecond, Factor: 2.0},
		Sleep: func(ctx context.Context, _ time.Duration) error {
			cancel()
			return ctx.Err()
		},
	}

	_, err := Do(ctx, cfg, "op", func(ctx context.Context) (string, error) {
		return "", MarkTransient(503, errors.New("unavailable"))
	})

	require.ErrorIs(t, err, context.Canceled)
}

func TestMarkTransient(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name      string
		code      int
		transient bool
	}{
		{"service unavailable", 503, true},
		{"rate limited", 429, true},
		{"request timeout", 408, true},
		{"bad request is fatal", 400, false},
		{"server error is fatal", 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MarkTransient(tt.code, base)
			assert.Equal(t, tt.transient, IsTransient(err))
			assert.ErrorIs(t, err, base)
		})
	}

	assert.NoError(t, MarkTransient(503, nil))
	assert.False(t, IsTransient(nil))
}

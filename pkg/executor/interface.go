package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// Output runs a command and returns its raw stdout, for commands that
	// emit binary data (e.g. ffmpeg piping audio to stdout).
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

package executor

import "context"

// LineHandler receives each stdout line of a streamed command.
type LineHandler func(line string)

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
	Stream(ctx context.Context, onLine LineHandler, name string, args ...string) error
}

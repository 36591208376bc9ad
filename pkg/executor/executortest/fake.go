// Package executortest provides an in-memory executor.Executor for tests.
package executortest

import (
	"context"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/video-insight/pkg/executor"
)

// Call is one recorded invocation.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// Line returns the invocation as a single space-separated string.
func (c Call) Line() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Response is what the fake answers for a command.
type Response struct {
	Stdout string
	Lines  []string
	Err    error
}

// Fake records every call and answers through Handler.
type Fake struct {
	Handler func(call Call) Response

	mu    sync.Mutex
	calls []Call
}

var _ executor.Executor = (*Fake)(nil)

// Calls returns a copy of the recorded invocations.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallsTo returns invocations of the named binary.
func (f *Fake) CallsTo(name string) []Call {
	var out []Call
	for _, c := range f.Calls() {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

func (f *Fake) respond(call Call) Response {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	if f.Handler == nil {
		return Response{}
	}
	return f.Handler(call)
}

func (f *Fake) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.ExecuteInDir(ctx, "", name, args...)
}

func (f *Fake) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	resp := f.respond(Call{Dir: dir, Name: name, Args: args})
	return resp.Stdout, resp.Err
}

func (f *Fake) Stream(ctx context.Context, onLine executor.LineHandler, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resp := f.respond(Call{Name: name, Args: args})
	if onLine != nil {
		for _, l := range resp.Lines {
			onLine(l)
		}
	}
	return resp.Err
}

// ArgAfter returns the argument following flag, or "".
func ArgAfter(args []string, flag string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}

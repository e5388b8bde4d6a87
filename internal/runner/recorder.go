package runner

import (
	"context"
	"strings"
	"sync"
)

// Recorder is a Runner that records commands instead of executing them.
// It backs dry runs and tests.
type Recorder struct {
	mu       sync.Mutex
	Commands []Call
	// Fail, when set, is consulted for every call; a non-nil result is returned
	// as the command's error.
	Fail func(call Call) error
}

// Call is one recorded invocation.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call as a shell-like command line.
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Run records the call.
func (r *Recorder) Run(_ context.Context, dir, name string, args ...string) error {
	call := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}
	r.mu.Lock()
	r.Commands = append(r.Commands, call)
	r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail(call)
	}
	return nil
}

// Lines returns every recorded call as a command line.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.Commands))
	for i, c := range r.Commands {
		out[i] = c.String()
	}
	return out
}

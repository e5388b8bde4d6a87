package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner runs one command to completion in dir.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// CommandError reports a command that started but exited non-zero.
type CommandError struct {
	Command  string
	Dir      string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q failed in %s (exit code %d)", e.Command, e.Dir, e.ExitCode)
	if tail := lastLines(e.Stderr, 5); tail != "" {
		msg += ":\n" + tail
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Stdout and Stderr receive the child's output; nil discards it.
	Stdout io.Writer
	Stderr io.Writer
	// Env is appended to the current process environment.
	Env []string
}

// Run resolves name on PATH and executes it in dir. A missing binary is
// returned as a wrapped exec.ErrNotFound; a non-zero exit as *CommandError.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s is required but was not found on PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	stdout := r.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	var stderrBuf bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()
	if err == nil {
		return nil
	}

	line := strings.Join(append([]string{name}, args...), " ")
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{
			Command:  line,
			Dir:      dir,
			ExitCode: exitErr.ExitCode(),
			Stderr:   stderrBuf.String(),
			Err:      err,
		}
	}
	return fmt.Errorf("running %q: %w", line, err)
}

// Available reports whether name resolves on PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Start launches name without waiting for it to exit. Used for editors.
func Start(dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found on PATH: %w", name, err)
	}
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	return cmd.Process.Release()
}

// OpenEditor opens dir in editor and returns once the editor has started.
func OpenEditor(editor, dir string) error {
	return Start(dir, editor, dir)
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

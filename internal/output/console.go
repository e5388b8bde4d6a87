package output

import (
	"context"
	"fmt"
	"io"
)

// Console reports generation progress to a terminal. Long tasks get a
// spinner; finished tasks get a checkmark line.
type Console struct {
	Out io.Writer
	ctx context.Context
}

// NewConsole creates a Console writing to out.
func NewConsole(ctx context.Context, out io.Writer) *Console {
	return &Console{Out: out, ctx: ctx}
}

// Task runs fn under a spinner titled title and prints the outcome.
func (c *Console) Task(title string, fn func() error) error {
	ctx := c.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	err := RunWithSpinner(ctx, fn, WithTitle(title))
	if err != nil {
		fmt.Fprintln(c.Out, FormatFailure(title))
		return err
	}
	fmt.Fprintln(c.Out, FormatCheckmark(title))
	return nil
}

// Info prints a plain progress line.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.Out, msg)
}

// Success prints a checkmark line.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.Out, FormatCheckmark(msg))
}

// Warn prints a warning line.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.Out, FormatWarning(msg))
}

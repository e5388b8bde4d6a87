package output

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func withoutTTY(t *testing.T) {
	t.Helper()
	orig := IsTTY
	IsTTY = func() bool { return false }
	t.Cleanup(func() { IsTTY = orig })
}

func TestBanner(t *testing.T) {
	b := Banner("-- Frsk Development --")
	if !strings.Contains(b, "-- Frsk Development --") {
		t.Errorf("banner should contain tagline, got:\n%s", b)
	}
	if !strings.Contains(b, "/$$$$$$$") {
		t.Error("banner should contain the ASCII art")
	}
}

func TestFormatters(t *testing.T) {
	if got := FormatCheckmark("done"); !strings.Contains(got, "✔") || !strings.Contains(got, "done") {
		t.Errorf("FormatCheckmark() = %q", got)
	}
	if got := FormatWarning("careful"); !strings.Contains(got, "careful") {
		t.Errorf("FormatWarning() = %q", got)
	}
	if got := FormatFailure("broke"); !strings.Contains(got, "broke") {
		t.Errorf("FormatFailure() = %q", got)
	}
}

func TestRunWithSpinner_NoTTY(t *testing.T) {
	withoutTTY(t)

	called := false
	err := RunWithSpinner(context.Background(), func() error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Fatalf("action should run directly: called=%v err=%v", called, err)
	}

	want := errors.New("install failed")
	if err := RunWithSpinner(context.Background(), func() error { return want }); !errors.Is(err, want) {
		t.Errorf("error should propagate, got %v", err)
	}
}

func TestConsole(t *testing.T) {
	withoutTTY(t)

	var buf bytes.Buffer
	c := NewConsole(context.Background(), &buf)

	if err := c.Task("Installing dependencies...", func() error { return nil }); err != nil {
		t.Fatalf("Task() error: %v", err)
	}
	boom := errors.New("boom")
	if err := c.Task("Building CSS...", func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Task() should return action error, got %v", err)
	}
	c.Warn("editor missing")
	c.Info("Creating project structure...")

	out := buf.String()
	for _, want := range []string{"✔ Installing dependencies...", "✖ Building CSS...", "editor missing", "Creating project structure..."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

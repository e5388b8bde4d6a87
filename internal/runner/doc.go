// Package runner executes external tools (package managers, build tools,
// editors) inside a generated project directory. A run blocks until the
// process exits; the caller's context is the only cancellation handle.
package runner

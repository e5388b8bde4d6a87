package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/frsk-dev/devhub/internal/output"
	"github.com/frsk-dev/devhub/internal/project"
	"github.com/frsk-dev/devhub/internal/runner"
)

// Env carries the user settings that shape generation.
type Env struct {
	// PackageManager runs install and build scripts. Defaults to "npm".
	PackageManager string
	// InstallVue enables the install step for Vue projects, which is off by
	// default.
	InstallVue bool
	// Year is interpolated into copyright footers. Zero means the current year.
	Year int
}

func (e Env) packageManager() string {
	if e.PackageManager == "" {
		return "npm"
	}
	return e.PackageManager
}

// Generator plans one template's files for the project at dir.
type Generator func(dir string, opts project.FeatureOptions, env Env) (*Plan, error)

var generators = map[project.TemplateID]Generator{
	project.TemplateHTML:     GenerateHTML,
	project.TemplateReact:    GenerateReact,
	project.TemplateElectron: GenerateElectron,
	project.TemplateFiveM:    GenerateFiveM,
	project.TemplateRedM:     GenerateRedM,
	project.TemplateVue:      GenerateVue,
}

// Select returns the generator for id, or *UnknownTemplateError.
func Select(id project.TemplateID) (Generator, error) {
	g, ok := generators[id]
	if !ok {
		return nil, &UnknownTemplateError{Template: id}
	}
	return g, nil
}

// PlanFor selects the request's generator and builds its plan.
func PlanFor(req project.Request, opts project.FeatureOptions, env Env) (*Plan, error) {
	gen, err := Select(req.Template)
	if err != nil {
		return nil, err
	}
	return gen(req.Dir, opts, env)
}

// Reporter receives user-facing progress. Generation code never prints.
type Reporter interface {
	// Task runs fn as a named long-running task.
	Task(title string, fn func() error) error
	Info(msg string)
	Warn(msg string)
}

// NopReporter discards progress and runs tasks directly.
type NopReporter struct{}

func (NopReporter) Task(_ string, fn func() error) error { return fn() }
func (NopReporter) Info(string)                          {}
func (NopReporter) Warn(string)                          {}

// Result summarizes an applied plan.
type Result struct {
	OutputDir string
	Template  project.TemplateID
	Files     []string
	Dirs      []string
	Commands  []string
	Warnings  []string
}

// Executor applies plans to disk.
type Executor struct {
	Runner   runner.Runner
	Reporter Reporter
	// SkipCommands records run steps as warnings instead of executing them.
	SkipCommands bool
}

// Apply creates dir and performs the plan's steps in order. The first
// failing step aborts the rest; files already written are left in place.
// Existing files are overwritten.
func (e *Executor) Apply(ctx context.Context, dir string, plan *Plan) (*Result, error) {
	rep := e.Reporter
	if rep == nil {
		rep = NopReporter{}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	result := &Result{OutputDir: dir, Template: plan.Template}
	result.Warnings = append(result.Warnings, plan.Warnings...)

	for _, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		target := filepath.Join(dir, filepath.FromSlash(step.Path))

		switch step.Kind {
		case MkdirStep:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return result, fmt.Errorf("creating directory %s: %w", step.Path, err)
			}
			output.Debug("created directory", "path", step.Path)
			result.Dirs = append(result.Dirs, step.Path)

		case WriteStep:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return result, fmt.Errorf("creating directory for %s: %w", step.Path, err)
			}
			if err := os.WriteFile(target, step.Content, 0o644); err != nil {
				return result, fmt.Errorf("writing %s: %w", step.Path, err)
			}
			output.Debug("created file", "path", step.Path)
			result.Files = append(result.Files, step.Path)

		case RunStep:
			line := strings.Join(step.Command, " ")
			if e.SkipCommands || e.Runner == nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("skipped %q; run it in %s", line, dir))
				continue
			}
			output.Debug("running command", "cmd", line, "dir", dir)
			err := rep.Task(step.Title, func() error {
				return e.Runner.Run(ctx, dir, step.Command[0], step.Command[1:]...)
			})
			if err != nil {
				return result, fmt.Errorf("running %q: %w", line, err)
			}
			result.Commands = append(result.Commands, line)

		default:
			return result, fmt.Errorf("unknown step kind %v", step.Kind)
		}
	}
	return result, nil
}

// Generate plans and applies a request in one call.
func Generate(ctx context.Context, req project.Request, opts project.FeatureOptions, env Env, exec *Executor) (*Result, error) {
	plan, err := PlanFor(req, opts, env)
	if err != nil {
		return nil, err
	}
	return exec.Apply(ctx, req.Dir, plan)
}

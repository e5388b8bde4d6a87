package scaffold

import (
	"strings"

	"github.com/frsk-dev/devhub/internal/project"
)

// StepKind tells the executor what a Step does.
type StepKind int

const (
	// MkdirStep creates a directory (and its parents).
	MkdirStep StepKind = iota
	// WriteStep writes a file, replacing any existing one.
	WriteStep
	// RunStep runs an external command in the project directory.
	RunStep
)

func (k StepKind) String() string {
	switch k {
	case MkdirStep:
		return "mkdir"
	case WriteStep:
		return "write"
	case RunStep:
		return "run"
	default:
		return "unknown"
	}
}

// Step is one unit of work. Paths are slash-separated and relative to the
// project directory.
type Step struct {
	Kind    StepKind
	Path    string
	Content []byte
	// Title is shown while a RunStep executes.
	Title   string
	Command []string
}

// GeneratedFile is a file produced by a generator.
type GeneratedFile struct {
	Path    string
	Content string
}

// Plan is the ordered work a generator wants done.
type Plan struct {
	Template project.TemplateID
	Name     string
	Steps    []Step
	// Warnings collects non-fatal findings, such as package.json schema issues.
	Warnings []string
}

// Files returns the written files in plan order. A path written twice
// reports the last content at the position of its first write.
func (p *Plan) Files() []GeneratedFile {
	index := make(map[string]int)
	var files []GeneratedFile
	for _, s := range p.Steps {
		if s.Kind != WriteStep {
			continue
		}
		if i, ok := index[s.Path]; ok {
			files[i].Content = string(s.Content)
			continue
		}
		index[s.Path] = len(files)
		files = append(files, GeneratedFile{Path: s.Path, Content: string(s.Content)})
	}
	return files
}

// File returns the content planned for path.
func (p *Plan) File(path string) (string, bool) {
	for _, f := range p.Files() {
		if f.Path == path {
			return f.Content, true
		}
	}
	return "", false
}

// Dirs returns the explicitly created directories in plan order.
func (p *Plan) Dirs() []string {
	var dirs []string
	for _, s := range p.Steps {
		if s.Kind == MkdirStep {
			dirs = append(dirs, s.Path)
		}
	}
	return dirs
}

// Commands returns each RunStep as a command line.
func (p *Plan) Commands() []string {
	var cmds []string
	for _, s := range p.Steps {
		if s.Kind == RunStep {
			cmds = append(cmds, strings.Join(s.Command, " "))
		}
	}
	return cmds
}

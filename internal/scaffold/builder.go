package scaffold

import (
	"path/filepath"
	"time"

	"github.com/frsk-dev/devhub/internal/project"
)

// builder accumulates plan steps. The first error sticks and turns every
// later call into a no-op, so generators read as a flat list of steps.
type builder struct {
	plan *Plan
	env  Env
	data templateData
	err  error
}

func newBuilder(id project.TemplateID, dir string, opts project.FeatureOptions, env Env) *builder {
	name := filepath.Base(dir)
	year := env.Year
	if year == 0 {
		year = time.Now().Year()
	}
	return &builder{
		plan: &Plan{Template: id, Name: name},
		env:  env,
		data: templateData{Name: name, Year: year, Ext: "js", Flags: opts},
	}
}

// fragments assembles the slots used by later templates.
func (b *builder) fragments(rules []fragment) {
	if b.err != nil {
		return
	}
	b.data.Slots, b.err = assemble(rules, b.data)
}

func (b *builder) mkdir(paths ...string) {
	if b.err != nil {
		return
	}
	for _, p := range paths {
		b.plan.Steps = append(b.plan.Steps, Step{Kind: MkdirStep, Path: p})
	}
}

// file renders the embedded src and writes it to dst.
func (b *builder) file(dst, src string) {
	if b.err != nil {
		return
	}
	content, err := readTemplate(src, b.data)
	if err != nil {
		b.err = err
		return
	}
	b.content(dst, content)
}

func (b *builder) content(dst, content string) {
	if b.err != nil {
		return
	}
	b.plan.Steps = append(b.plan.Steps, Step{Kind: WriteStep, Path: dst, Content: []byte(content)})
}

// manifest writes package.json and records schema issues as warnings.
func (b *builder) manifest(m *PackageManifest) {
	if b.err != nil {
		return
	}
	data, err := m.Encode()
	if err != nil {
		b.err = err
		return
	}
	issues, err := ValidateManifest(data)
	if err != nil {
		b.err = err
		return
	}
	b.plan.Warnings = append(b.plan.Warnings, manifestWarnings("package.json", issues)...)
	b.content("package.json", string(data))
}

func (b *builder) run(title string, command ...string) {
	if b.err != nil {
		return
	}
	b.plan.Steps = append(b.plan.Steps, Step{Kind: RunStep, Title: title, Command: command})
}

// install runs the configured package manager's install command.
func (b *builder) install() {
	b.run("Installing dependencies...", b.env.packageManager(), "install")
}

func (b *builder) build() (*Plan, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.plan, nil
}

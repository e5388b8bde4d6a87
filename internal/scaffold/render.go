package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/frsk-dev/devhub/internal/project"
)

//go:embed templates
var templateFS embed.FS

// templateData is the value every template executes against.
type templateData struct {
	Name string
	Year int
	// Ext is the script extension for the project ("js" or "ts").
	Ext   string
	Flags project.FeatureOptions
	Slots map[string]string
	// Game is set for FiveM and RedM resources.
	Game *cfxGame
}

// funcs returns the per-render helpers layered on top of sprig.
func (d templateData) funcs() template.FuncMap {
	return template.FuncMap{
		// on reports whether a feature flag is selected.
		"on": func(flag string) bool {
			return d.Flags.Enabled(project.Flag(flag))
		},
		// slot returns the assembled fragments for name, each line indented
		// by n spaces and preceded by a newline. Empty slots render nothing.
		"slot": func(name string, n int) string {
			content := d.Slots[name]
			if content == "" {
				return ""
			}
			pad := strings.Repeat(" ", n)
			lines := strings.Split(content, "\n")
			for i, line := range lines {
				if line != "" {
					lines[i] = pad + line
				}
			}
			return "\n" + strings.Join(lines, "\n")
		},
	}
}

// readTemplate loads one embedded source. Files ending in ".tmpl" are
// executed; everything else is returned unchanged.
func readTemplate(src string, data templateData) (string, error) {
	raw, err := templateFS.ReadFile(path.Join("templates", src))
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", src, err)
	}
	if !strings.HasSuffix(src, ".tmpl") {
		return string(raw), nil
	}

	tmpl, err := template.New(path.Base(src)).
		Delims("[[", "]]").
		Option("missingkey=error").
		Funcs(sprig.TxtFuncMap()).
		Funcs(data.funcs()).
		Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", src, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", src, err)
	}
	return buf.String(), nil
}

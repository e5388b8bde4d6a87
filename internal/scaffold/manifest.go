package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/frsk-dev/devhub/internal/project"
)

// PackageManifest is a generated package.json. Field order matches the
// order npm itself writes.
type PackageManifest struct {
	Name            string              `json:"name"`
	Version         string              `json:"version"`
	Description     string              `json:"description,omitempty"`
	Private         bool                `json:"private,omitempty"`
	Type            string              `json:"type,omitempty"`
	Main            string              `json:"main,omitempty"`
	Scripts         map[string]string   `json:"scripts,omitempty"`
	Dependencies    map[string]string   `json:"dependencies,omitempty"`
	DevDependencies map[string]string   `json:"devDependencies,omitempty"`
	Browserslist    map[string][]string `json:"browserslist,omitempty"`
	Build           map[string]any      `json:"build,omitempty"`
}

// manifestPatch is the package.json contribution of one feature flag.
// Scripts replace existing entries with the same name.
type manifestPatch struct {
	when            project.Flag
	scripts         map[string]string
	dependencies    map[string]string
	devDependencies map[string]string
	build           map[string]any
}

// apply merges every patch whose flag is selected, in declared order.
func (m *PackageManifest) apply(opts project.FeatureOptions, patches []manifestPatch) {
	for _, p := range patches {
		if p.when != "" && !opts.Enabled(p.when) {
			continue
		}
		m.Scripts = merge(m.Scripts, p.scripts)
		m.Dependencies = merge(m.Dependencies, p.dependencies)
		m.DevDependencies = merge(m.DevDependencies, p.devDependencies)
		if len(p.build) > 0 {
			if m.Build == nil {
				m.Build = make(map[string]any)
			}
			maps.Copy(m.Build, p.build)
		}
	}
}

func merge(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// Encode renders the manifest with two-space indentation and a trailing
// newline. HTML escaping is off so scripts such as "a && b" stay readable.
func (m *PackageManifest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding package.json: %w", err)
	}
	return buf.Bytes(), nil
}

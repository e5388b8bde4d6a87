package project

import (
	_ "embed"
	"fmt"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

// Catalog lists the templates offered to the user.
type Catalog struct {
	Templates []TemplateInfo `yaml:"templates"`
}

// TemplateInfo describes one template and the questions asked for it.
type TemplateInfo struct {
	ID        TemplateID `yaml:"id"`
	Label     string     `yaml:"label"`
	Title     string     `yaml:"title"`
	NPM       bool       `yaml:"npm"`
	NextStep  string     `yaml:"next_step"`
	Questions []Question `yaml:"questions"`
}

// Question is one multi-select prompt.
type Question struct {
	Name    string   `yaml:"name"`
	Message string   `yaml:"message"`
	Choices []Choice `yaml:"choices"`
}

// Choice maps a prompt label to the flag it enables.
type Choice struct {
	Label  string `yaml:"label"`
	Flag   Flag   `yaml:"flag"`
	Hidden bool   `yaml:"hidden"`
}

var (
	catalogOnce sync.Once
	catalog     *Catalog
	catalogErr  error
)

// LoadCatalog parses the embedded catalog once and returns it.
func LoadCatalog() (*Catalog, error) {
	catalogOnce.Do(func() {
		catalog, catalogErr = ParseCatalog(rawCatalog)
	})
	return catalog, catalogErr
}

// ParseCatalog decodes and checks a catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing template catalog: %w", err)
	}
	seen := make(map[TemplateID]bool)
	for _, t := range c.Templates {
		if _, err := ParseTemplateID(string(t.ID)); err != nil {
			return nil, fmt.Errorf("template catalog: %w", err)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("template catalog: duplicate template %q", t.ID)
		}
		seen[t.ID] = true
		for _, q := range t.Questions {
			for _, ch := range q.Choices {
				if _, err := ParseFlag(string(ch.Flag)); err != nil {
					return nil, fmt.Errorf("template catalog: %s: %w", t.ID, err)
				}
			}
		}
	}
	return &c, nil
}

// Lookup returns the entry for id.
func (c *Catalog) Lookup(id TemplateID) (*TemplateInfo, bool) {
	for i := range c.Templates {
		if c.Templates[i].ID == id {
			return &c.Templates[i], true
		}
	}
	return nil, false
}

// Flags returns every flag the template understands, hidden ones included.
func (t *TemplateInfo) Flags() []Flag {
	var flags []Flag
	for _, q := range t.Questions {
		for _, ch := range q.Choices {
			flags = append(flags, ch.Flag)
		}
	}
	return flags
}

// Supports reports whether f is one of the template's flags.
func (t *TemplateInfo) Supports(f Flag) bool {
	for _, known := range t.Flags() {
		if known == f {
			return true
		}
	}
	return false
}

// Visible returns the question's choices that are offered interactively.
func (q Question) Visible() []Choice {
	var out []Choice
	for _, ch := range q.Choices {
		if !ch.Hidden {
			out = append(out, ch)
		}
	}
	return out
}

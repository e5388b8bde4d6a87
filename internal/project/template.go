package project

import "fmt"

// TemplateID identifies one of the project templates.
type TemplateID string

// Supported templates.
const (
	TemplateHTML     TemplateID = "html"
	TemplateReact    TemplateID = "react"
	TemplateElectron TemplateID = "electron"
	TemplateFiveM    TemplateID = "fivem"
	TemplateRedM     TemplateID = "redm"
	TemplateVue      TemplateID = "vue"
)

// Templates returns every supported template in prompt order.
func Templates() []TemplateID {
	return []TemplateID{
		TemplateHTML,
		TemplateReact,
		TemplateElectron,
		TemplateFiveM,
		TemplateRedM,
		TemplateVue,
	}
}

// ParseTemplateID converts s into a TemplateID, rejecting unknown values.
func ParseTemplateID(s string) (TemplateID, error) {
	for _, t := range Templates() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown template %q: choose one of %v", s, Templates())
}

func (t TemplateID) String() string { return string(t) }

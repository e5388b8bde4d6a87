package project

import (
	"strings"
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}

	if len(c.Templates) != len(Templates()) {
		t.Fatalf("catalog has %d templates, want %d", len(c.Templates), len(Templates()))
	}
	for i, id := range Templates() {
		if c.Templates[i].ID != id {
			t.Errorf("template[%d] = %q, want %q", i, c.Templates[i].ID, id)
		}
	}

	electron, ok := c.Lookup(TemplateElectron)
	if !ok {
		t.Fatal("electron missing from catalog")
	}
	for _, f := range []Flag{FlagFrameless, FlagCustomTitlebar, FlagAutoUpdater, FlagInstaller} {
		if !electron.Supports(f) {
			t.Errorf("electron should support %s", f)
		}
	}
	if electron.Supports(FlagRouter) {
		t.Error("electron should not support features.router")
	}

	react, _ := c.Lookup(TemplateReact)
	if len(react.Flags()) != 0 {
		t.Errorf("react takes no flags, got %v", react.Flags())
	}
	fivem, _ := c.Lookup(TemplateFiveM)
	if fivem.NPM {
		t.Error("fivem is not npm based")
	}
}

func TestCatalogHiddenChoices(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	html, _ := c.Lookup(TemplateHTML)

	if !html.Supports(FlagNormalize) {
		t.Fatal("html should accept css-reset.normalize")
	}
	for _, q := range html.Questions {
		for _, ch := range q.Visible() {
			if ch.Flag == FlagNormalize {
				t.Error("normalize reset must not be offered interactively")
			}
		}
	}
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"bad yaml", "templates: [", "parsing template catalog"},
		{"unknown id", "templates:\n  - id: angular\n", "unknown template"},
		{"duplicate", "templates:\n  - id: vue\n  - id: vue\n", "duplicate"},
		{"bad flag", "templates:\n  - id: vue\n    questions:\n      - choices:\n          - { flag: router }\n", "invalid feature flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ParseCatalog() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

package scaffold

import (
	"strings"
	"testing"

	"github.com/frsk-dev/devhub/internal/project"
)

func TestPackageManifestEncode(t *testing.T) {
	m := &PackageManifest{
		Name:    "demo",
		Version: "1.0.0",
		Scripts: map[string]string{"build": "vue-tsc && vite build"},
	}
	data, err := m.Encode()
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "name": "demo",
  "version": "1.0.0",
  "scripts": {
    "build": "vue-tsc && vite build"
  }
}
`
	if string(data) != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", data, want)
	}
}

func TestPackageManifestApply(t *testing.T) {
	m := &PackageManifest{
		Scripts:      map[string]string{"build": "vite build"},
		Dependencies: map[string]string{"vue": "^3.3.4"},
	}
	m.apply(project.NewFeatureOptions(project.FlagTypeScript, project.FlagPinia), vuePatches)

	if m.Scripts["build"] != "vue-tsc && vite build" {
		t.Errorf("build script = %q", m.Scripts["build"])
	}
	if m.Dependencies["pinia"] == "" || m.Dependencies["vue"] == "" {
		t.Errorf("dependencies = %v", m.Dependencies)
	}
	if _, ok := m.Dependencies["vue-router"]; ok {
		t.Error("router patch applied without its flag")
	}
	if m.Scripts["test"] != "" {
		t.Error("testing patch applied without its flag")
	}
}

func TestValidateManifest(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
		issues  []string // substrings expected among issue paths
	}{
		{
			name: "valid",
			json: `{"name": "my-app", "version": "1.0.0", "scripts": {"start": "electron ."}}`,
		},
		{
			name:   "uppercase name",
			json:   `{"name": "MyApp", "version": "1.0.0"}`,
			issues: []string{"/name"},
		},
		{
			name:   "bad version",
			json:   `{"name": "app", "version": "one"}`,
			issues: []string{"/version"},
		},
		{
			name:   "missing version",
			json:   `{"name": "app"}`,
			issues: []string{"version"},
		},
		{
			name:   "empty script",
			json:   `{"name": "app", "version": "1.0.0", "scripts": {"build": ""}}`,
			issues: []string{"/scripts/build"},
		},
		{
			name:    "malformed json",
			json:    `{"name":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, err := ValidateManifest([]byte(tt.json))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateManifest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(tt.issues) == 0 && len(issues) != 0 {
				t.Errorf("unexpected issues: %v", issues)
			}
			var all []string
			for _, issue := range issues {
				all = append(all, issue.String())
			}
			joined := strings.Join(all, "\n")
			for _, want := range tt.issues {
				assertContains(t, joined, want)
			}
		})
	}
}

func TestManifestWarnings(t *testing.T) {
	if got := manifestWarnings("package.json", nil); got != nil {
		t.Errorf("no issues should give no warnings, got %v", got)
	}
	got := manifestWarnings("package.json", []ManifestIssue{{Path: "/name", Message: "bad"}})
	if len(got) != 2 {
		t.Fatalf("warnings = %v", got)
	}
	assertContains(t, got[0], "(1 issues)")
	assertContains(t, got[1], "/name: bad")
}

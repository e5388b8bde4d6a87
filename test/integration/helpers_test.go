//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frsk-dev/devhub/internal/branding"
	"github.com/frsk-dev/devhub/internal/project"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir     string // DEVHUB_HOME, holds config.yaml and the version cache
	ProjectsDir string // parent directory projects are generated into
}

// setupTestEnv creates isolated temp directories and points DEVHUB_HOME at
// one of them. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:     t.TempDir(),
		ProjectsDir: t.TempDir(),
	}
	t.Setenv(branding.EnvVar("HOME"), env.HomeDir)
	return env
}

// request builds a validated request under the env's projects dir.
func (e *testEnv) request(t *testing.T, name string, id project.TemplateID) project.Request {
	t.Helper()
	req, err := project.NewRequest(name, id, e.ProjectsDir)
	if err != nil {
		t.Fatalf("NewRequest(%q, %s): %v", name, id, err)
	}
	return req
}

// allFlags returns every flag the catalog declares for id, hidden ones included.
func allFlags(t *testing.T, id project.TemplateID) project.FeatureOptions {
	t.Helper()
	catalog, err := project.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	info, ok := catalog.Lookup(id)
	if !ok {
		t.Fatalf("template %s missing from catalog", id)
	}
	return project.NewFeatureOptions(info.Flags()...)
}

// writeFile creates a file with the given content, creating parent dirs.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

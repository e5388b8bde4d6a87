package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	got := s.Settings()
	want := Settings{
		ProjectsDir:    filepath.Join(home, "Documents", "DevHub"),
		PackageManager: "npm",
		Editor:         "code",
		OpenEditor:     true,
		InstallVue:     false,
		RegistryURL:    "https://registry.npmjs.org",
		UpdateCheck:    true,
	}
	if got != want {
		t.Errorf("Settings() = %+v\nwant %+v", got, want)
	}
}

func TestSetPersists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".devhub")

	s, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyPackageManager, "pnpm"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := s.Set(KeyInstallVue, "true"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if s.Get(KeyPackageManager) != "pnpm" {
		t.Errorf("in-memory value not updated")
	}

	data, err := os.ReadFile(FilePath(dir))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "package_manager: pnpm") {
		t.Errorf("config file missing package_manager:\n%s", content)
	}
	if strings.Contains(content, "registry_url") {
		t.Errorf("defaults should not be written:\n%s", content)
	}

	reloaded, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	settings := reloaded.Settings()
	if settings.PackageManager != "pnpm" || !settings.InstallVue {
		t.Errorf("reloaded settings = %+v", settings)
	}
}

func TestSetRejectsBadInput(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("colour", "blue"); err == nil || !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("expected unknown key error, got %v", err)
	}
	if err := s.Set(KeyOpenEditor, "sometimes"); err == nil {
		t.Error("expected bool parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DEVHUB_EDITOR", "vim")
	t.Setenv("DEVHUB_INSTALL_VUE", "true")

	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	settings := s.Settings()
	if settings.Editor != "vim" {
		t.Errorf("Editor = %q, want vim", settings.Editor)
	}
	if !settings.InstallVue {
		t.Error("InstallVue should come from DEVHUB_INSTALL_VUE")
	}
}

func TestProjectsDirExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DEVHUB_PROJECTS_DIR", "~/code")

	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Settings().ProjectsDir; got != filepath.Join(home, "code") {
		t.Errorf("ProjectsDir = %q", got)
	}
}

func TestDirOverride(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("DEVHUB_HOME", custom)
	if Dir() != custom {
		t.Errorf("Dir() = %q, want %q", Dir(), custom)
	}

	t.Setenv("DEVHUB_HOME", "")
	t.Setenv("HOME", "/home/someone")
	if got := Dir(); got != filepath.Join("/home/someone", ".devhub") {
		t.Errorf("Dir() = %q", got)
	}
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(FilePath(dir), []byte("editor: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected parse error")
	}
}

func TestKeys(t *testing.T) {
	keys := Keys()
	if len(keys) != 7 || keys[0] != KeyEditor {
		t.Errorf("Keys() = %v", keys)
	}
}

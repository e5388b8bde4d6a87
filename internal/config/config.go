package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/frsk-dev/devhub/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyProjectsDir    = "projects_dir"
	KeyPackageManager = "package_manager"
	KeyEditor         = "editor"
	KeyOpenEditor     = "open_editor"
	KeyInstallVue     = "install.vue"
	KeyRegistryURL    = "registry_url"
	KeyUpdateCheck    = "update_check"
)

var boolKeys = map[string]bool{
	KeyOpenEditor:  true,
	KeyInstallVue:  true,
	KeyUpdateCheck: true,
}

func defaults() map[string]any {
	return map[string]any{
		KeyProjectsDir:    filepath.Join(homeDir(), "Documents", "DevHub"),
		KeyPackageManager: "npm",
		KeyEditor:         "code",
		KeyOpenEditor:     true,
		KeyInstallVue:     false,
		KeyRegistryURL:    "https://registry.npmjs.org",
		KeyUpdateCheck:    true,
	}
}

// Keys returns every known setting key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults()))
	for k := range defaults() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// Dir returns the config directory: $DEVHUB_HOME when set, else ~/.devhub.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	return filepath.Join(homeDir(), branding.HomeDir())
}

// FilePath returns the full path to the config file in dir.
func FilePath(dir string) string {
	return filepath.Join(dir, fileName+"."+fileType)
}

// EnsureDir creates dir if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Settings is the resolved view the create command works from.
type Settings struct {
	ProjectsDir    string
	PackageManager string
	Editor         string
	OpenEditor     bool
	InstallVue     bool
	RegistryURL    string
	UpdateCheck    bool
}

// Store reads and writes settings for one config directory.
type Store struct {
	dir string
	v   *viper.Viper
}

// Load reads dir/config.yaml (a missing file is fine) layered over the
// defaults and under the environment.
func Load(dir string) (*Store, error) {
	v := viper.New()
	for k, val := range defaults() {
		v.SetDefault(k, val)
	}
	v.SetConfigFile(FilePath(dir))
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", FilePath(dir), err)
	}
	return &Store{dir: dir, v: v}, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Dir returns the directory the store reads from.
func (s *Store) Dir() string { return s.dir }

// Get returns a setting as a string. Unknown keys return "".
func (s *Store) Get(key string) string {
	return s.v.GetString(key)
}

// Set validates and persists one setting.
func (s *Store) Set(key, value string) error {
	if _, ok := defaults()[key]; !ok {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}

	var typed any = value
	if boolKeys[key] {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		typed = b
	}

	if err := EnsureDir(s.dir); err != nil {
		return err
	}

	// Only explicitly set keys are written; defaults and env stay out of the file.
	file := viper.New()
	file.SetConfigFile(FilePath(s.dir))
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil && !isNotExist(err) {
		return fmt.Errorf("reading %s: %w", FilePath(s.dir), err)
	}
	file.Set(key, typed)
	if err := file.WriteConfigAs(FilePath(s.dir)); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	s.v.Set(key, typed)
	return nil
}

// Settings resolves every key. A leading "~" in projects_dir expands to
// the home directory.
func (s *Store) Settings() Settings {
	return Settings{
		ProjectsDir:    expandHome(s.v.GetString(KeyProjectsDir)),
		PackageManager: s.v.GetString(KeyPackageManager),
		Editor:         s.v.GetString(KeyEditor),
		OpenEditor:     s.v.GetBool(KeyOpenEditor),
		InstallVue:     s.v.GetBool(KeyInstallVue),
		RegistryURL:    s.v.GetString(KeyRegistryURL),
		UpdateCheck:    s.v.GetBool(KeyUpdateCheck),
	}
}

func expandHome(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

package updater

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheFileName = "version-check.json"
	// DefaultCacheMaxAge is how long a registry answer is trusted.
	DefaultCacheMaxAge = 24 * time.Hour
)

// VersionCache is the last registry answer, kept in the config directory so
// startup never waits on the network.
type VersionCache struct {
	Package         string    `json:"package,omitempty"`
	Registry        string    `json:"registry,omitempty"`
	LatestVersion   string    `json:"latest_version"`
	CurrentVersion  string    `json:"current_version"`
	CheckedAt       time.Time `json:"checked_at"`
	UpdateAvailable bool      `json:"update_available"`
}

// answers reports whether the cache was filled from pkg on registry. Entries
// without a recorded source are accepted.
func (c *VersionCache) answers(pkg, registry string) bool {
	if c.Package != "" && c.Package != pkg {
		return false
	}
	return c.Registry == "" || c.Registry == registry
}

// Record turns a registry answer into a cache entry stamped with now.
func (u *Updater) Record(result *CheckResult) *VersionCache {
	return &VersionCache{
		Package:         u.pkg,
		Registry:        u.registry,
		LatestVersion:   result.Latest,
		CurrentVersion:  result.Current,
		CheckedAt:       time.Now(),
		UpdateAvailable: result.UpdateAvailable,
	}
}

// LoadCache reads the version cache from configDir. A missing file (first
// run) yields nil, nil.
func LoadCache(configDir string) (*VersionCache, error) {
	data, err := os.ReadFile(filepath.Join(configDir, cacheFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading version cache: %w", err)
	}

	cache := new(VersionCache)
	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("parsing version cache: %w", err)
	}
	return cache, nil
}

// SaveCache replaces the version cache in configDir. The file is written
// next to the target and renamed so readers never see a partial document.
func SaveCache(configDir string, cache *VersionCache) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling version cache: %w", err)
	}

	tmp, err := os.CreateTemp(configDir, cacheFileName+".*")
	if err != nil {
		return fmt.Errorf("writing version cache: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing version cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing version cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(configDir, cacheFileName)); err != nil {
		return fmt.Errorf("replacing version cache: %w", err)
	}
	return nil
}

// IsCacheStale returns true if the cache is nil or older than maxAge.
func IsCacheStale(cache *VersionCache, maxAge time.Duration) bool {
	return cache == nil || time.Since(cache.CheckedAt) > maxAge
}

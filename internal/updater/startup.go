package updater

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/frsk-dev/devhub/internal/output"
)

// RefreshTimeout bounds the background registry call.
const RefreshTimeout = 5 * time.Second

// CheckAndPrintBanner prints an update banner from the version cache and, if
// the cache is stale, refreshes it in the background for the next run. It
// never blocks and never reports errors.
func (u *Updater) CheckAndPrintBanner(w io.Writer, configDir string) {
	cache, err := LoadCache(configDir)
	if err != nil {
		output.Debug("ignoring version cache", "err", err)
		cache = nil
	}
	if cache != nil && !cache.answers(u.pkg, u.registry) {
		output.Debug("version cache is for another registry", "package", cache.Package, "registry", cache.Registry)
		cache = nil
	}

	// A cache written by an older build may still claim an update.
	if cache != nil && cache.UpdateAvailable {
		if newer, err := IsUpdateAvailable(u.currentVersion, cache.LatestVersion); err == nil && newer {
			PrintUpdateBanner(w, u.currentVersion, cache.LatestVersion, u.pkg)
		}
	}

	if IsCacheStale(cache, DefaultCacheMaxAge) {
		go u.refreshCache(configDir)
	}
}

// PrintUpdateBanner prints the update notification to w.
func PrintUpdateBanner(w io.Writer, current, latest, pkg string) {
	fmt.Fprintf(w, "\n%s\n", output.FormatWarning(fmt.Sprintf("Update available: %s -> %s", current, latest)))
	fmt.Fprintf(w, "    Run `npm install -g %s` to upgrade\n\n", pkg)
}

// refreshCache fetches the latest version and updates the cache file.
func (u *Updater) refreshCache(configDir string) {
	ctx, cancel := context.WithTimeout(context.Background(), RefreshTimeout)
	defer cancel()

	result, err := u.Check(ctx)
	if err != nil {
		return
	}

	// Silently ignore save errors.
	_ = SaveCache(configDir, u.Record(result))
}

package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/frsk-dev/devhub/internal/branding"
)

// PackageVersion is the registry's document for one published version.
type PackageVersion struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// CheckResult is the outcome of a synchronous check.
type CheckResult struct {
	Current         string
	Latest          string
	UpdateAvailable bool
}

// LatestVersion fetches <registry>/<package>/latest.
func (u *Updater) LatestVersion(ctx context.Context) (*PackageVersion, error) {
	// Scoped names keep their "@" but the slash must be encoded.
	name := strings.ReplaceAll(u.pkg, "/", "%2f")
	url := fmt.Sprintf("%s/%s/latest", u.registry, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", branding.CLIName()+"-updater")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching latest version: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("package %s not found in registry", u.pkg)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var pv PackageVersion
	if err := json.Unmarshal(body, &pv); err != nil {
		return nil, fmt.Errorf("parsing registry response: %w", err)
	}
	if pv.Version == "" {
		return nil, fmt.Errorf("registry response has no version")
	}
	return &pv, nil
}

// Check fetches the latest version and compares it with the running one.
func (u *Updater) Check(ctx context.Context) (*CheckResult, error) {
	latest, err := u.LatestVersion(ctx)
	if err != nil {
		return nil, err
	}
	available, err := IsUpdateAvailable(u.currentVersion, latest.Version)
	if err != nil {
		return nil, err
	}
	return &CheckResult{
		Current:         u.currentVersion,
		Latest:          latest.Version,
		UpdateAvailable: available,
	}, nil
}

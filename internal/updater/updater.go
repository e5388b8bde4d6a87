package updater

import (
	"net/http"
	"strings"

	"github.com/frsk-dev/devhub/internal/branding"
)

// DefaultRegistry is the public npm registry.
const DefaultRegistry = "https://registry.npmjs.org"

// Updater checks a package registry for newer releases.
type Updater struct {
	currentVersion string
	httpClient     *http.Client
	registry       string
	pkg            string
}

// Option configures an Updater.
type Option func(*Updater)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(u *Updater) {
		u.httpClient = c
	}
}

// WithRegistry points the updater at another registry or mirror.
func WithRegistry(url string) Option {
	return func(u *Updater) {
		if url != "" {
			u.registry = strings.TrimRight(url, "/")
		}
	}
}

// WithPackage overrides the package name looked up in the registry.
func WithPackage(name string) Option {
	return func(u *Updater) {
		if name != "" {
			u.pkg = name
		}
	}
}

// New creates an Updater with the given current version and options.
func New(currentVersion string, opts ...Option) *Updater {
	u := &Updater{
		currentVersion: currentVersion,
		httpClient:     http.DefaultClient,
		registry:       DefaultRegistry,
		pkg:            branding.NPMPackage(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CurrentVersion returns the version this updater was created with.
func (u *Updater) CurrentVersion() string {
	return u.currentVersion
}

// Package returns the registry package name being checked.
func (u *Updater) Package() string {
	return u.pkg
}

package project

import (
	"fmt"
	"sort"
	"strings"
)

// Flag names one optional capability of a template, written as
// "<group>.<name>" (for example "window.frameless").
type Flag string

// HTML flags.
const (
	FlagPureCSS   Flag = "css-framework.pure-css"
	FlagTailwind  Flag = "css-framework.tailwind"
	FlagBootstrap Flag = "css-framework.bootstrap"
	FlagSass      Flag = "css-framework.sass"
	FlagSEO       Flag = "meta.seo"
	FlagSocial    Flag = "meta.social"
	FlagNormalize Flag = "css-reset.normalize"
)

// Electron flags.
const (
	FlagFrameless      Flag = "window.frameless"
	FlagCustomTitlebar Flag = "window.custom-titlebar"
	FlagAutoUpdater    Flag = "build.auto-updater"
	FlagInstaller      Flag = "build.installer"
)

// Vue flags.
const (
	FlagTypeScript Flag = "features.typescript"
	FlagRouter     Flag = "features.router"
	FlagPinia      Flag = "features.pinia"
	FlagTesting    Flag = "features.testing"
)

// Group returns the concern a flag belongs to ("css-framework", "window", ...).
func (f Flag) Group() string {
	group, _, _ := strings.Cut(string(f), ".")
	return group
}

// Name returns the flag without its group.
func (f Flag) Name() string {
	_, name, ok := strings.Cut(string(f), ".")
	if !ok {
		return string(f)
	}
	return name
}

// ParseFlag checks that s has the "<group>.<name>" shape.
func ParseFlag(s string) (Flag, error) {
	group, name, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok || group == "" || name == "" {
		return "", fmt.Errorf("invalid feature flag %q: expected <group>.<name>", s)
	}
	return Flag(group + "." + name), nil
}

// FeatureOptions is the set of flags selected for one generation run.
// It is built once and never mutated; a missing flag reads as false.
type FeatureOptions struct {
	set map[Flag]bool
}

// NewFeatureOptions returns options with the given flags enabled.
func NewFeatureOptions(flags ...Flag) FeatureOptions {
	set := make(map[Flag]bool, len(flags))
	for _, f := range flags {
		set[f] = true
	}
	return FeatureOptions{set: set}
}

// Enabled reports whether f was selected.
func (o FeatureOptions) Enabled(f Flag) bool {
	return o.set[f]
}

// Any reports whether at least one of flags was selected.
func (o FeatureOptions) Any(flags ...Flag) bool {
	for _, f := range flags {
		if o.set[f] {
			return true
		}
	}
	return false
}

// Flags returns the selected flags in sorted order.
func (o FeatureOptions) Flags() []Flag {
	out := make([]Flag, 0, len(o.set))
	for f, on := range o.set {
		if on {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Group returns the selected flag names within one concern, sorted.
func (o FeatureOptions) Group(group string) []string {
	var names []string
	for _, f := range o.Flags() {
		if f.Group() == group {
			names = append(names, f.Name())
		}
	}
	return names
}

func (o FeatureOptions) String() string {
	flags := o.Flags()
	parts := make([]string, len(flags))
	for i, f := range flags {
		parts[i] = string(f)
	}
	return strings.Join(parts, ",")
}

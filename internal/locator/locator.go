// Package locator finds a previously built Boa CLI executable inside a Boa
// source checkout.
//
// Given the editor's workspace roots, the locator walks upward from the first
// root looking for the checkout root (identified by its Cargo manifest and
// cli directory), then probes the conventional cargo output locations for a
// debug or release build of the boa binary. Every branch returns a usable
// value: either a concrete path or a deferral to ambient PATH lookup at spawn
// time. The locator never fails.
package locator

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/dshills/boadap/internal/notify"
)

// FallbackName is the executable name handed to PATH lookup when no build
// artifact can be located in the workspace.
const FallbackName = "boa"

// buildProfiles lists cargo build profiles in probe order. A debug build is
// preferred over a release build: during iterative work it is the artifact a
// developer most recently produced.
var buildProfiles = []string{"debug", "release"}

// Platform identifies the operating system the executable is probed for.
type Platform string

const (
	// PlatformWindows appends the .exe suffix to candidate paths.
	PlatformWindows Platform = "windows"
)

// CurrentPlatform returns the platform boadap is running on.
func CurrentPlatform() Platform {
	return Platform(runtime.GOOS)
}

// Kind distinguishes the two locator outcomes.
type Kind int

const (
	// KindResolved means a concrete executable path was found on disk.
	KindResolved Kind = iota

	// KindDeferred means no artifact was found; the spawn step should
	// resolve FallbackName through the ambient executable search path.
	KindDeferred
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindResolved:
		return "resolved"
	case KindDeferred:
		return "deferred"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of a locate call.
//
// The deferred variant is deliberately distinct from a concrete path so a
// real path that happens to equal FallbackName cannot be mistaken for the
// fallback.
type Result struct {
	// Kind is the result variant.
	Kind Kind

	// Path is the located executable path. Only set when Kind is
	// KindResolved.
	Path string
}

// Resolved reports whether the result carries a concrete path.
func (r Result) Resolved() bool {
	return r.Kind == KindResolved
}

// Locator finds Boa build artifacts in workspace checkouts.
//
// Locator is stateless apart from its reporter and is safe for concurrent
// use.
type Locator struct {
	reporter notify.Reporter
}

// New creates a Locator reporting through the given Reporter.
// A nil reporter discards all messages.
func New(reporter notify.Reporter) *Locator {
	if reporter == nil {
		reporter = notify.Discard{}
	}
	return &Locator{reporter: reporter}
}

// Locate finds a boa executable for the given workspace roots and platform.
//
// With no workspace roots, or no Boa checkout enclosing the first root, or
// no built artifact under the checkout's target directory, Locate returns a
// deferred result; resolution then happens via PATH at spawn time. Locate
// performs filesystem reads only and never returns an error.
func (l *Locator) Locate(workspaceRoots []string, platform Platform) Result {
	if len(workspaceRoots) == 0 {
		return Result{Kind: KindDeferred}
	}

	root, ok := findCheckoutRoot(workspaceRoots[0])
	if !ok {
		l.reporter.Inform("no Boa checkout found in workspace, deferring to PATH lookup")
		return Result{Kind: KindDeferred}
	}

	name := executableName(platform)
	for _, profile := range buildProfiles {
		candidate := filepath.Join(root, "target", profile, name)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		l.reporter.Inform("using boa executable at " + candidate)
		return Result{Kind: KindResolved, Path: candidate}
	}

	l.reporter.Inform("no boa build artifact under " + root + ", deferring to PATH lookup")
	return Result{Kind: KindDeferred}
}

// executableName returns the platform-specific executable file name.
func executableName(platform Platform) string {
	if platform == PlatformWindows {
		return FallbackName + ".exe"
	}
	return FallbackName
}

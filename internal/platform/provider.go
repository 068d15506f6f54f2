package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Backend names an Inspector implementation.
type Backend string

const (
	BackendAuto        Backend = "auto"
	BackendNative      Backend = "native"
	BackendAppleScript Backend = "applescript"
)

// ParseBackend validates a backend name. The empty string means auto.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case "", BackendAuto:
		return BackendAuto, nil
	case BackendNative:
		return BackendNative, nil
	case BackendAppleScript:
		return BackendAppleScript, nil
	default:
		return "", fmt.Errorf("unknown backend: %q (expected auto, native, or applescript)", s)
	}
}

// Provider bundles the platform backends for the current OS. Any field may be
// nil when the capability is not available in this build.
type Provider struct {
	Inputter  Inputter
	Display   Display
	Inspector Inspector
}

// Options controls provider construction.
type Options struct {
	Backend Backend

	// Fallback is the scripting-bridge Inspector used when the native one is
	// not selected or not compiled in.
	Fallback Inspector
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("automac is not supported on %s/%s; supported: darwin/amd64, darwin/arm64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init(). It returns
// the native backends only; inspector selection happens in NewProvider.
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// PermissionCheckFunc is set by platform-specific packages via init(). It
// returns one error per missing OS permission.
var PermissionCheckFunc func() []error

// NewProvider returns a Provider for the current OS with its Inspector chosen
// once according to opts.Backend.
func NewProvider(opts Options) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	p, err := NewProviderFunc()
	if err != nil {
		return nil, err
	}

	switch opts.Backend {
	case BackendNative:
		if p.Inspector == nil {
			return nil, fmt.Errorf("native inspector not available in this build (requires cgo)")
		}
	case BackendAppleScript:
		if opts.Fallback == nil {
			return nil, fmt.Errorf("applescript backend requested but no script runner configured")
		}
		p.Inspector = opts.Fallback
	case BackendAuto, "":
		if p.Inspector == nil {
			p.Inspector = opts.Fallback
		}
	default:
		return nil, fmt.Errorf("unknown backend: %q", opts.Backend)
	}
	return p, nil
}

// CheckPermissions returns the missing OS permissions, or nil when none are
// missing or the platform does not report them.
func CheckPermissions() []error {
	if PermissionCheckFunc == nil {
		return nil
	}
	return PermissionCheckFunc()
}

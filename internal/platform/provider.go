package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// Provider bundles the platform backends for the current OS.
type Provider struct {
	Shell Shell
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("taskbar-embed is not supported on %s/%s; supported: windows (or run with --simulate)", runtime.GOOS, runtime.GOARCH)

// ErrWindowNotFound is returned when a window lookup yields no handle.
var ErrWindowNotFound = errors.New("window not found")

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win32/init.go for the Win32 registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

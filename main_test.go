package main

import (
	"errors"
	"runtime"
	"testing"

	"github.com/mj1618/taskbar-embed/internal/platform"
)

// The binary links the win32 backend on every OS; off Windows it registers
// nothing and the CLI falls back to ErrUnsupported.
func TestBackendRegistration(t *testing.T) {
	_, err := platform.NewProvider()
	if runtime.GOOS != "windows" {
		if !errors.Is(err, platform.ErrUnsupported) {
			t.Errorf("expected ErrUnsupported on %s, got %v", runtime.GOOS, err)
		}
		return
	}
	if platform.NewProviderFunc == nil {
		t.Error("win32 backend did not register a provider")
	}
}
